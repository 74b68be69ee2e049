// Package clock provides the periodic timer capability the rotator is
// driven by. Front ends supply their own Scheduler so ticks land on
// their event loop; this package carries the wall-clock and manual ones.
package clock

import "time"

// Scheduler starts periodic timers.
type Scheduler interface {
	// Every calls fn once per interval until the returned Timer is stopped.
	Every(interval time.Duration, fn func()) Timer
}

// Timer is a running periodic timer.
type Timer interface {
	// Stop detaches the callback. It is idempotent and may be called
	// from inside the callback itself.
	Stop()
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(interval time.Duration, fn func()) Timer

// Every calls f(interval, fn).
func (f SchedulerFunc) Every(interval time.Duration, fn func()) Timer {
	return f(interval, fn)
}
