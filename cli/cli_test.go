package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yllada/greeter/clock"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/rotator"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).PrintTable(greeting.DefaultTable()))

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "LANGUAGE")
	require.Contains(t, lines[1], "English")
	require.Contains(t, lines[1], "Hello World!")
	require.Contains(t, lines[5], "¡Hola Mundo!")
}

func TestFormatLine(t *testing.T) {
	require.Equal(t, "[  7/100] German     Hallo Welt!", FormatLine(7, 100, "German", "Hallo Welt!"))
	require.Equal(t, "[1/4] English    Hello World!", FormatLine(1, 4, "English", "Hello World!"))
}

func TestRun_PrintsEveryChangeUntilDone(t *testing.T) {
	req := require.New(t)
	table, err := greeting.NewTable(
		greeting.Entry{Language: "English", Text: "Hello World!"},
		greeting.Entry{Language: "French", Text: "Bonjour le monde!"},
	)
	req.NoError(err)

	m := clock.NewManual()
	r, err := rotator.New(table, rotator.Options{Interval: time.Second, MaxCount: 4}, m)
	req.NoError(err)

	buf := &syncBuffer{}
	errCh := make(chan error, 1)
	go func() {
		errCh <- New(buf).Run(context.Background(), r)
	}()

	// The header is written once Run has subscribed.
	req.Eventually(func() bool {
		return strings.Contains(buf.String(), "greetings\n")
	}, time.Second, time.Millisecond)

	m.Advance(5)

	req.NoError(<-errCh)
	out := buf.String()
	req.Equal(2, strings.Count(out, "Hello World!"))
	req.Equal(2, strings.Count(out, "Bonjour le monde!"))
	req.Contains(out, "[4/4] French")
	req.Contains(out, "Done after 4 greetings.")
}

func TestRun_CancelStopsRotator(t *testing.T) {
	m := clock.NewManual()
	r, err := rotator.New(greeting.DefaultTable(), rotator.DefaultOptions(), m)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err = New(&buf).Run(ctx, r)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, rotator.Stopped, r.State())
	require.Zero(t, m.Active())
	require.Contains(t, buf.String(), "Stopped after 0 greetings.")
}

func TestRun_CancelDuringTicksKeepsOutputConsistent(t *testing.T) {
	req := require.New(t)
	r, err := rotator.New(greeting.DefaultTable(), rotator.Options{Interval: time.Millisecond, MaxCount: 100000}, clock.NewTicker())
	req.NoError(err)

	buf := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- New(buf).Run(ctx, r)
	}()

	req.Eventually(func() bool {
		return strings.Contains(buf.String(), "[     3/100000]")
	}, 5*time.Second, time.Millisecond)
	cancel()
	req.ErrorIs(<-errCh, context.Canceled)

	// Let a tick that was already running try to print.
	time.Sleep(10 * time.Millisecond)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	shown := len(lines) - 2
	req.Equal(fmt.Sprintf("Stopped after %d greetings.", shown), lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		req.True(strings.HasPrefix(line, "["), "unexpected line %q", line)
	}
}

func TestDryRun_PrintsWholeRotation(t *testing.T) {
	req := require.New(t)
	m := clock.NewManual()
	r, err := rotator.New(greeting.DefaultTable(), rotator.Options{Interval: time.Hour, MaxCount: 7}, m)
	req.NoError(err)

	var buf bytes.Buffer
	req.NoError(New(&buf).DryRun(r, m))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	req.Len(lines, 9)
	req.Equal("Greeter: 5 languages, every 1h0m0s, 7 greetings", lines[0])
	req.Equal("[1/7] English    Hello World!", lines[1])
	req.Equal("[6/7] English    Hello World!", lines[6])
	req.Equal("[7/7] French     Bonjour le monde!", lines[7])
	req.Equal("Done after 7 greetings.", lines[8])
	req.Equal(rotator.Stopped, r.State())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
