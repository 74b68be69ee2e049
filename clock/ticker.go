package clock

import (
	"sync"
	"time"
)

// Ticker is a Scheduler backed by time.Ticker. Each timer owns one
// goroutine; callbacks for a timer run serially on it.
type Ticker struct{}

// NewTicker returns the wall-clock scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every starts a goroutine that calls fn once per interval.
func (Ticker) Every(interval time.Duration, fn func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(interval),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) run(fn func()) {
	defer close(t.done)
	defer t.ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-t.ticker.C:
			// A tick and a stop can be ready together; stop wins.
			select {
			case <-t.stop:
				return
			default:
			}
			fn()
		}
	}
}

// Stop never waits for the goroutine, so it is safe inside fn.
func (t *tickerTimer) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// Done is closed once the timer goroutine has exited.
func (t *tickerTimer) Done() <-chan struct{} {
	return t.done
}
