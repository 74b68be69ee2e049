package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yllada/greeter/clock"
)

// tickMsg carries one tick of timer id through the event loop.
type tickMsg struct {
	id int
}

// Scheduler is a clock.Scheduler whose ticks arrive as tea.Tick messages,
// so timer callbacks run on the Bubble Tea event loop alongside Update.
type Scheduler struct {
	mu     sync.Mutex
	timers []*teaTimer
}

type teaTimer struct {
	owner    *Scheduler
	id       int
	interval time.Duration
	fn       func()
	stopped  bool
}

var _ clock.Scheduler = (*Scheduler)(nil)

// NewScheduler returns a scheduler with no timers.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn. Ticks start flowing once Init's command runs.
func (s *Scheduler) Every(interval time.Duration, fn func()) clock.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &teaTimer{owner: s, id: len(s.timers), interval: interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Init arms every live timer.
func (s *Scheduler) Init() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cmds []tea.Cmd
	for _, t := range s.timers {
		if !t.stopped {
			cmds = append(cmds, t.next())
		}
	}
	return tea.Batch(cmds...)
}

// handle runs the timer's callback and re-arms it while it is live.
func (s *Scheduler) handle(msg tickMsg) tea.Cmd {
	t := s.timer(msg.id)
	if t == nil || t.isStopped() {
		return nil
	}
	t.fn()
	if t.isStopped() {
		return nil
	}
	return t.next()
}

func (s *Scheduler) timer(id int) *teaTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.timers) {
		return nil
	}
	return s.timers[id]
}

func (t *teaTimer) next() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (t *teaTimer) isStopped() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.stopped
}

// Stop drops the timer; a tick already in flight is ignored on arrival.
func (t *teaTimer) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}
