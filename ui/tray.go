// Package ui provides the graphical user interface for Greeter.
// This file contains the system tray indicator.
package ui

import (
	"fmt"
	"sync"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/greeter/common"
)

// Pre-generated icons.
var (
	iconRunning  = GenerateIcon(RunningIconConfig())
	iconFinished = GenerateIcon(FinishedIconConfig())
)

// TrayIndicator mirrors the current greeting in the system tray.
type TrayIndicator struct {
	app *Application

	mu           sync.Mutex
	ready        bool
	greetingItem *systray.MenuItem
	progressItem *systray.MenuItem
	language     string
	greeting     string
	ticks        int
	finished     bool
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{app: app}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(iconRunning)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	greetingItem := systray.AddMenuItem("", "Current greeting")
	greetingItem.Disable()
	progressItem := systray.AddMenuItem("", "Rotation progress")
	progressItem.Disable()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Show Window", "Show the greeting window")
	go func() {
		for range showItem.ClickedCh {
			glib.IdleAdd(t.app.showWindow)
		}
	}()

	quitItem := systray.AddMenuItem("Quit", "Close Greeter")
	go func() {
		for range quitItem.ClickedCh {
			glib.IdleAdd(t.app.Quit)
			systray.Quit()
		}
	}()

	t.mu.Lock()
	t.greetingItem = greetingItem
	t.progressItem = progressItem
	t.ready = true
	t.mu.Unlock()

	t.render()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	t.mu.Lock()
	t.ready = false
	t.mu.Unlock()
	common.LogDebug("Tray indicator exited")
}

// Update records the latest values and refreshes the tray once ready.
func (t *TrayIndicator) Update(language, greeting string, ticks int, finished bool) {
	t.mu.Lock()
	t.language, t.greeting, t.ticks, t.finished = language, greeting, ticks, finished
	t.mu.Unlock()
	t.render()
}

func (t *TrayIndicator) render() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		return
	}

	title, tooltip := trayText(t.language, t.greeting)
	systray.SetTitle(title)
	systray.SetTooltip(tooltip)
	t.greetingItem.SetTitle(tooltip)

	if t.finished {
		systray.SetIcon(iconFinished)
		t.progressItem.SetTitle(fmt.Sprintf("✓ Finished (%d greetings)", t.ticks))
	} else {
		systray.SetIcon(iconRunning)
		t.progressItem.SetTitle(fmt.Sprintf("Greeting %d of %d", t.ticks, t.app.rotator.Options().MaxCount))
	}
}

// trayText returns the short title and the tooltip for the tray.
func trayText(language, greeting string) (title, tooltip string) {
	if greeting == "" {
		return language, fmt.Sprintf("%s - %s", common.AppName, language)
	}
	return greeting, fmt.Sprintf("%s: %s", language, greeting)
}

// Quit removes the tray icon.
func (t *TrayIndicator) Quit() {
	systray.Quit()
}
