// Package common provides shared constants, types, and utilities
// used across the Greeter application.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.greeter.app"
	// AppName is the display name of the application.
	AppName = "Greeter"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "greeter"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "greeter.log"
)

// Rotation defaults.
const (
	// DefaultTickInterval is how long each greeting stays on screen.
	DefaultTickInterval = 2 * time.Second
	// DefaultMaxCount is the number of ticks before the rotation stops.
	DefaultMaxCount = 100
)

// Placeholders shown before the first tick. SentinelLanguage is never a
// valid greeting table key.
const (
	SentinelLanguage = "Language"
	SentinelGreeting = "Greeting"
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 420
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 240
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
	// NotificationTimeout is how long a desktop notification stays visible.
	NotificationTimeout = 5 * time.Second
)

// Front ends.
const (
	FrontendAuto  = "auto"
	FrontendGUI   = "gui"
	FrontendTUI   = "tui"
	FrontendPlain = "plain"
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
