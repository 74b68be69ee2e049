package ui

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/greeter/clock"
)

// MainLoopScheduler runs timer callbacks as GLib timeout sources, so
// they execute on the GTK main thread and may touch widgets directly.
// Every and Stop must be called on the main thread.
type MainLoopScheduler struct{}

var _ clock.Scheduler = MainLoopScheduler{}

// Every adds a GLib timeout source that calls fn once per interval.
func (MainLoopScheduler) Every(interval time.Duration, fn func()) clock.Timer {
	t := &mainLoopTimer{}
	glib.TimeoutAdd(uint(interval.Milliseconds()), func() bool {
		if t.stopped {
			return false
		}
		fn()
		// Returning false destroys the source.
		return !t.stopped
	})
	return t
}

type mainLoopTimer struct {
	stopped bool
}

// Stop prevents further callbacks; the source is destroyed the next
// time it is dispatched, or right away when Stop runs inside fn.
func (t *mainLoopTimer) Stop() {
	t.stopped = true
}
