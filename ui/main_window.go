package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/observable"
	"github.com/yllada/greeter/rotator"
)

// MainWindow shows the current language and greeting.
type MainWindow struct {
	app           *Application
	window        *adw.ApplicationWindow
	windowTitle   *adw.WindowTitle
	languageLabel *gtk.Label
	greetingLabel *gtk.Label
	progressBar   *gtk.ProgressBar
	statusLabel   *gtk.Label

	observers   []func(language, greeting string, ticks int, finished bool)
	unsubscribe []observable.Unsubscribe
	finished    bool
}

// NewMainWindow creates the window and binds it to the application's
// rotator.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = adw.NewApplicationWindow(&app.app.Application)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetIconName("face-smile")

	// With the tray running the window hides instead of closing.
	mw.window.SetHideOnClose(app.config.ShowTray)

	mw.createLayout()
	mw.bind(app.rotator)

	mw.window.ConnectCloseRequest(func() bool {
		if !app.config.ShowTray {
			mw.Dispose()
		}
		return false
	})

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	headerBar := adw.NewHeaderBar()
	mw.windowTitle = adw.NewWindowTitle(common.AppName, "")
	headerBar.SetTitleWidget(mw.windowTitle)

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(mw.createMenu())
	headerBar.PackEnd(menuButton)

	contentBox := gtk.NewBox(gtk.OrientationVertical, 12)
	contentBox.SetMarginTop(24)
	contentBox.SetMarginBottom(24)
	contentBox.SetMarginStart(24)
	contentBox.SetMarginEnd(24)
	contentBox.SetVExpand(true)
	contentBox.SetVAlign(gtk.AlignCenter)

	mw.languageLabel = gtk.NewLabel("")
	mw.languageLabel.AddCSSClass("language-label")
	contentBox.Append(mw.languageLabel)

	mw.greetingLabel = gtk.NewLabel("")
	mw.greetingLabel.AddCSSClass("greeting-label")
	mw.greetingLabel.SetWrap(true)
	mw.greetingLabel.SetJustify(gtk.JustifyCenter)
	contentBox.Append(mw.greetingLabel)

	mw.progressBar = gtk.NewProgressBar()
	mw.progressBar.AddCSSClass("rotation-progress")
	mw.progressBar.SetMarginTop(12)
	contentBox.Append(mw.progressBar)

	mw.statusLabel = gtk.NewLabel("")
	mw.statusLabel.AddCSSClass("status-label")
	contentBox.Append(mw.statusLabel)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)
	mainBox.Append(headerBar)
	mainBox.Append(contentBox)

	mw.window.SetContent(mainBox)
}

// createMenu creates the window menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()
	menu.Append("About Greeter", "app.about")
	menu.Append("Quit", "app.quit")

	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	return menu
}

// bind subscribes the widgets to r. Ticks run on the main loop, so the
// callbacks update widgets directly.
func (mw *MainWindow) bind(r *rotator.Rotator) {
	mw.unsubscribe = append(mw.unsubscribe, followSnapshots(r, mw.render))
	mw.render(r.Snapshot())
}

// followSnapshots calls fn with a snapshot after every tick. Ticks
// notifies after language and greeting, so fn never sees a language
// paired with the previous tick's greeting.
func followSnapshots(r *rotator.Rotator, fn func(rotator.Snapshot)) observable.Unsubscribe {
	return r.Ticks().Subscribe(func(int) {
		fn(r.Snapshot())
	})
}

// render redraws every widget from snap.
func (mw *MainWindow) render(snap rotator.Snapshot) {
	mw.languageLabel.SetText(snap.Language)
	mw.greetingLabel.SetText(snap.Greeting)
	if snap.TickCount == 0 {
		mw.languageLabel.AddCSSClass("placeholder")
		mw.greetingLabel.AddCSSClass("placeholder")
	} else {
		mw.languageLabel.RemoveCSSClass("placeholder")
		mw.greetingLabel.RemoveCSSClass("placeholder")
	}

	mw.windowTitle.SetSubtitle(snap.Language)
	mw.progressBar.SetFraction(float64(snap.TickCount) / float64(snap.MaxCount))

	if mw.finished {
		mw.statusLabel.SetText(fmt.Sprintf("Finished after %d greetings", snap.TickCount))
	} else {
		mw.statusLabel.SetText(fmt.Sprintf("%d / %d", snap.TickCount, snap.MaxCount))
	}

	for _, fn := range mw.observers {
		fn(snap.Language, snap.Greeting, snap.TickCount, mw.finished)
	}
}

// Observe calls fn with the rendered values after every redraw.
func (mw *MainWindow) Observe(fn func(language, greeting string, ticks int, finished bool)) {
	mw.observers = append(mw.observers, fn)
	snap := mw.app.rotator.Snapshot()
	fn(snap.Language, snap.Greeting, snap.TickCount, mw.finished)
}

// SetFinished switches the window to its finished look.
func (mw *MainWindow) SetFinished() {
	mw.finished = true
	mw.progressBar.AddCSSClass("finished")
	mw.statusLabel.AddCSSClass("finished")
	mw.render(mw.app.rotator.Snapshot())
}

// Dispose detaches the widgets from the rotator and stops it. It is
// idempotent.
func (mw *MainWindow) Dispose() {
	for _, unsubscribe := range mw.unsubscribe {
		unsubscribe()
	}
	mw.unsubscribe = nil
	mw.app.rotator.Stop()
}

// Show displays the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// onAbout shows the about dialog.
func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName("face-smile")
	about.SetVersion(mw.app.version)
	about.SetComments(fmt.Sprintf("Says hello in %d languages.", mw.app.table.Len()))

	about.Show()
}
