package ui

import (
	"context"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/config"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/rotator"
)

// Application represents the desktop application.
type Application struct {
	app      *adw.Application
	config   *config.Config
	table    *greeting.Table
	version  string
	rotator  *rotator.Rotator
	window   *MainWindow
	tray     *TrayIndicator
	notifier *DBusNotifier

	// closed when the application shuts down
	shutdown chan struct{}
}

// NewApplication creates the application. The rotation starts when the
// application activates.
func NewApplication(cfg *config.Config, table *greeting.Table, version string) *Application {
	app := adw.NewApplication(common.AppID, gio.ApplicationFlagsNone)

	application := &Application{
		app:      app,
		config:   cfg,
		table:    table,
		version:  version,
		shutdown: make(chan struct{}),
	}

	app.ConnectActivate(application.onActivate)
	app.ConnectShutdown(application.onShutdown)

	return application
}

// QuitOnDone quits the application when ctx is cancelled, so a signal
// handled by the caller still goes through the normal shutdown path.
func (a *Application) QuitOnDone(ctx context.Context) {
	go watchContext(ctx, a.shutdown, func() {
		glib.IdleAdd(a.Quit)
	})
}

// watchContext calls quit once ctx is done, unless stop closes first.
func watchContext(ctx context.Context, stop <-chan struct{}, quit func()) {
	select {
	case <-ctx.Done():
		common.LogInfo("Quitting: %v", ctx.Err())
		quit()
	case <-stop:
	}
}

// Run runs the application and returns its exit code.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate is called when the application is activated.
func (a *Application) onActivate() {
	// A second activation only raises the existing window.
	if a.window != nil {
		a.showWindow()
		return
	}

	a.ApplyTheme(a.config.Theme)
	LoadStyles()
	a.setupActions()

	r, err := rotator.New(a.table, a.config.RotatorOptions(), MainLoopScheduler{})
	if err != nil {
		common.LogError("Cannot start rotation: %v", err)
		a.app.Quit()
		return
	}
	a.rotator = r

	if a.config.ShowNotifications {
		notifier, err := NewDBusNotifier()
		if err != nil {
			common.LogWarn("Desktop notifications unavailable: %v", err)
		} else {
			a.notifier = notifier
		}
	}

	a.window = NewMainWindow(a)

	if a.config.ShowTray {
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
		a.window.Observe(a.tray.Update)
	}

	r.OnStopped(a.onRotationStopped)

	a.window.Show()
	common.LogInfo("%s %s started with %d languages", common.AppName, a.version, a.table.Len())
}

// onRotationStopped runs on the main loop when the rotator stops, either
// at the last tick or on teardown.
func (a *Application) onRotationStopped() {
	count := a.rotator.TickCount()
	if count < a.rotator.Options().MaxCount {
		return
	}
	common.LogInfo("Rotation finished after %d greetings", count)
	if a.window != nil {
		a.window.SetFinished()
	}
	if a.notifier != nil {
		notifier := a.notifier
		go NotifyFinished(notifier, count)
	}
}

// onShutdown releases the rotator, the tray and the bus connection.
func (a *Application) onShutdown() {
	if a.window != nil {
		a.window.Dispose()
	}
	if a.rotator != nil {
		a.rotator.Stop()
	}
	if a.tray != nil {
		a.tray.Quit()
	}
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			common.LogDebug("Closing session bus: %v", err)
		}
	}
	close(a.shutdown)
	common.LogDebug("Application shut down")
}

// setupActions registers the application actions.
func (a *Application) setupActions() {
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		a.Quit()
	})
	a.app.AddAction(quitAction)
	a.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	manager := adw.StyleManagerGetDefault()
	if manager == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		manager.SetColorScheme(adw.ColorSchemeForceLight)
	case common.ThemeDark:
		manager.SetColorScheme(adw.ColorSchemeForceDark)
	default:
		manager.SetColorScheme(adw.ColorSchemeDefault)
	}
}

// showWindow shows the main window.
func (a *Application) showWindow() {
	if a.window != nil {
		a.window.window.Present()
	}
}

// Quit closes the application.
func (a *Application) Quit() {
	a.app.Quit()
}
