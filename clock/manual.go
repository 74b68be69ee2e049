package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose ticks are delivered by calling Tick.
// It is used by tests and dry runs.
type Manual struct {
	mu     sync.Mutex
	timers []*manualTimer
}

// NewManual returns a manual scheduler with no timers.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	owner    *Manual
	interval time.Duration
	fn       func()
	stopped  bool
}

// Every registers fn. It runs only when Tick is called.
func (m *Manual) Every(interval time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{owner: m, interval: interval, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Tick delivers one tick to every live timer and returns how many fired.
func (m *Manual) Tick() int {
	fired := 0
	for _, t := range m.live() {
		if t.isStopped() {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// Advance calls Tick n times and returns the total number of callbacks.
func (m *Manual) Advance(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += m.Tick()
	}
	return total
}

// Active returns the number of timers that have not been stopped.
func (m *Manual) Active() int {
	return len(m.live())
}

// Intervals returns the interval of every live timer.
func (m *Manual) Intervals() []time.Duration {
	live := m.live()
	out := make([]time.Duration, 0, len(live))
	for _, t := range live {
		out = append(out, t.interval)
	}
	return out
}

func (m *Manual) live() []*manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

func (t *manualTimer) isStopped() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.stopped
}

func (t *manualTimer) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}
