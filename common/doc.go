// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Greeter application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Rotation defaults, placeholders, file names, UI dimensions
//   - Errors: Sentinel errors for construction-time precondition checks
//   - Interfaces: Small abstractions shared by the front ends
//   - Logger: Leveled logging with session IDs and rotated file output
//   - Utils: Config directory helpers
//
// # Usage
//
//	import "github.com/yllada/greeter/common"
//
//	common.LogInfo("Rotation started (%d languages)", table.Len())
//
//	if errors.Is(err, common.ErrEmptyTable) {
//	    // reject the configuration
//	}
package common
