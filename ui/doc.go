// Package ui provides the desktop user interface for Greeter.
//
// This package implements the GTK4 and libadwaita front end:
//
//   - Main window showing the current language and greeting
//   - System tray indicator mirroring the greeting
//   - Desktop notification when the rotation finishes
//
// # Architecture
//
// The rotator runs on MainLoopScheduler, so every tick is a GLib
// timeout source dispatched on the GTK main thread. Window bindings
// subscribe to the rotator's observable values and update widgets
// directly from their callbacks.
//
// The tray runs its own loop in a goroutine. Menu clicks hop back to the
// main thread with glib.IdleAdd before touching the window:
//
//	go func() {
//	    for range item.ClickedCh {
//	        glib.IdleAdd(app.showWindow)
//	    }
//	}()
//
// # Theme Support
//
// The configured theme is applied through the libadwaita style manager.
// "auto" follows the system color scheme.
//
// # File Organization
//
//   - app.go: Application lifecycle and rotator wiring
//   - main_window.go: Main window layout and bindings
//   - mainloop_clock.go: GLib timeout scheduler
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS styling
//   - notifications.go: Desktop notification integration
package ui
