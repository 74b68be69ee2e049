// Package rotator advances through a greeting table on a fixed cadence and
// exposes the current language and greeting as observable values.
//
// A Rotator starts its timer as soon as it is built. Each tick selects the
// next language in table order; the greeting is derived from the language
// inside the same setter, so greeting subscribers always run after
// language subscribers, and the tick counter notifies last. After MaxCount
// ticks the rotator stops itself.
// Stop may also be called at any time to release the timer early.
//
// All state is written by the tick callback alone. Use a Scheduler whose
// callbacks run on the goroutine that also renders the values (a GTK
// main-loop source, the Bubble Tea loop) when the subscribers touch UI.
package rotator

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/yllada/greeter/clock"
	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/observable"
)

// State is the lifecycle state of a Rotator.
type State int

const (
	Running State = iota
	Stopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Options configures the cadence and length of a rotation.
type Options struct {
	// Interval is the time between ticks.
	Interval time.Duration
	// MaxCount is the number of ticks after which the rotation stops.
	MaxCount int
}

// DefaultOptions returns a 2 second interval and 100 ticks.
func DefaultOptions() Options {
	return Options{
		Interval: common.DefaultTickInterval,
		MaxCount: common.DefaultMaxCount,
	}
}

// Validate checks the options' preconditions.
func (o Options) Validate() error {
	if o.Interval <= 0 {
		return common.ErrInvalidInterval
	}
	if o.MaxCount <= 0 {
		return common.ErrInvalidMaxCount
	}
	return nil
}

// Snapshot is a consistent read of the rotator's visible state.
type Snapshot struct {
	Language  string
	Greeting  string
	TickCount int
	MaxCount  int
	State     State
}

// Rotator cycles through a greeting table.
type Rotator struct {
	table *greeting.Table
	opts  Options

	language *observable.Value[string]
	greeting *observable.Value[string]

	ticks   *observable.Value[int]
	stopped atomic.Bool

	timerMu  sync.Mutex
	timer    clock.Timer
	stopOnce sync.Once
	done     chan struct{}

	hooksMu sync.Mutex
	hooks   []func()
}

// New validates its inputs, sets the placeholder values, and starts the
// timer on scheduler.
func New(table *greeting.Table, opts Options, scheduler clock.Scheduler) (*Rotator, error) {
	if table == nil || table.Len() == 0 {
		return nil, common.ErrEmptyTable
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if scheduler == nil {
		return nil, common.ErrNoScheduler
	}

	r := &Rotator{
		table:    table,
		opts:     opts,
		language: observable.New(common.SentinelLanguage),
		greeting: observable.New(common.SentinelGreeting),
		ticks:    observable.New(0),
		done:     make(chan struct{}),
	}

	// Held across Every so a tick that stops the rotator before Every
	// returns still finds the timer.
	r.timerMu.Lock()
	r.timer = scheduler.Every(opts.Interval, r.onTick)
	r.timerMu.Unlock()
	common.LogDebug("Rotator started: %d languages, every %v, %d ticks",
		table.Len(), opts.Interval, opts.MaxCount)

	return r, nil
}

// onTick advances the rotation by one step.
func (r *Rotator) onTick() {
	if r.stopped.Load() {
		return
	}

	n := r.ticks.Get()
	r.setLanguage(r.table.KeyAt(n % r.table.Len()))

	// A subscriber stopped the rotator mid-tick. The greeting already
	// matches the language; the tick is not counted.
	if r.stopped.Load() {
		return
	}

	n++
	r.ticks.Set(n)
	common.LogDebug("Tick %d/%d: %s", n, r.opts.MaxCount, r.language.Get())

	if n >= r.opts.MaxCount {
		r.Stop()
	}
}

// setLanguage is the only writer of both values.
func (r *Rotator) setLanguage(language string) {
	r.language.Set(language)
	r.greeting.Set(greeting.Derive(r.table, language))
}

// Stop detaches the timer and moves the rotator to Stopped. It is
// idempotent and safe to call from a subscriber or another goroutine.
// When called from a language or greeting subscriber, the current tick
// still derives its greeting but is not counted and Ticks does not
// notify.
func (r *Rotator) Stop() {
	r.stopOnce.Do(func() {
		r.stopped.Store(true)
		r.timerMu.Lock()
		timer := r.timer
		r.timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		close(r.done)
		common.LogDebug("Rotator stopped after %d ticks", r.ticks.Get())

		r.hooksMu.Lock()
		hooks := r.hooks
		r.hooks = nil
		r.hooksMu.Unlock()
		for _, fn := range hooks {
			fn()
		}
	})
}

// OnStopped registers fn to run once when the rotator stops. If it has
// already stopped, fn runs immediately.
func (r *Rotator) OnStopped(fn func()) {
	r.hooksMu.Lock()
	if !r.stopped.Load() {
		r.hooks = append(r.hooks, fn)
		r.hooksMu.Unlock()
		return
	}
	r.hooksMu.Unlock()
	fn()
}

// Done is closed when the rotator stops.
func (r *Rotator) Done() <-chan struct{} {
	return r.done
}

// Language is the currently selected language.
func (r *Rotator) Language() observable.Readable[string] {
	return r.language
}

// Greeting is the greeting for the current language, or "" when the
// language is not in the table.
func (r *Rotator) Greeting() observable.Readable[string] {
	return r.greeting
}

// Ticks is the number of ticks handled so far. It changes after the
// language and greeting of the same tick.
func (r *Rotator) Ticks() observable.Readable[int] {
	return r.ticks
}

// TickCount returns the number of ticks handled so far.
func (r *Rotator) TickCount() int {
	return r.ticks.Get()
}

// State returns Running until the rotator stops.
func (r *Rotator) State() State {
	if r.stopped.Load() {
		return Stopped
	}
	return Running
}

// Table returns the table being rotated.
func (r *Rotator) Table() *greeting.Table {
	return r.table
}

// Options returns the options the rotator was built with.
func (r *Rotator) Options() Options {
	return r.opts
}

// Snapshot returns the current visible state.
func (r *Rotator) Snapshot() Snapshot {
	return Snapshot{
		Language:  r.language.Get(),
		Greeting:  r.greeting.Get(),
		TickCount: r.TickCount(),
		MaxCount:  r.opts.MaxCount,
		State:     r.State(),
	}
}
