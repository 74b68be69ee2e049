package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManual_TickDeliversToLiveTimers(t *testing.T) {
	req := require.New(t)
	m := NewManual()

	a, b := 0, 0
	ta := m.Every(2*time.Second, func() { a++ })
	m.Every(time.Second, func() { b++ })

	req.Equal(2, m.Tick())
	req.Equal([]time.Duration{2 * time.Second, time.Second}, m.Intervals())

	ta.Stop()
	ta.Stop()
	req.Equal(1, m.Active())
	req.Equal(3, m.Advance(3))

	req.Equal(1, a)
	req.Equal(4, b)
}

func TestManual_StopInsideCallback(t *testing.T) {
	m := NewManual()

	calls := 0
	var timer Timer
	timer = m.Every(time.Second, func() {
		calls++
		timer.Stop()
	})

	m.Advance(5)
	require.Equal(t, 1, calls)
	require.Zero(t, m.Active())
}

func TestTicker_FiresAndStops(t *testing.T) {
	var calls atomic.Int32
	timer := NewTicker().Every(5*time.Millisecond, func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	timer.Stop()
	select {
	case <-timer.(*tickerTimer).Done():
	case <-time.After(time.Second):
		t.Fatal("ticker goroutine did not exit after Stop")
	}

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, after, calls.Load(), "no callbacks may run after the goroutine exits")
}

func TestTicker_StopInsideCallback(t *testing.T) {
	var calls atomic.Int32
	var timer Timer
	started := make(chan struct{})

	timer = NewTicker().Every(time.Millisecond, func() {
		<-started
		calls.Add(1)
		timer.Stop()
	})
	close(started)

	select {
	case <-timer.(*tickerTimer).Done():
	case <-time.After(time.Second):
		t.Fatal("Stop from inside the callback should end the goroutine")
	}
	require.Equal(t, int32(1), calls.Load())
}

func TestSchedulerFunc(t *testing.T) {
	var got time.Duration
	s := SchedulerFunc(func(d time.Duration, fn func()) Timer {
		got = d
		return NewManual().Every(d, fn)
	})

	s.Every(3*time.Second, func() {})
	require.Equal(t, 3*time.Second, got)
}
