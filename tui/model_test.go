package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/greeting"
	"github.com/yllada/greeter/rotator"
)

func newTestModel(t *testing.T, maxCount int) (*Model, *rotator.Rotator) {
	t.Helper()
	s := NewScheduler()
	r, err := rotator.New(greeting.DefaultTable(), rotator.Options{Interval: time.Second, MaxCount: maxCount}, s)
	require.NoError(t, err)
	m := NewModel(r, s)
	t.Cleanup(m.Close)
	return m, r
}

func tick(m *Model) tea.Cmd {
	_, cmd := m.Update(tickMsg{id: 0})
	return cmd
}

func TestModel_ShowsPlaceholdersBeforeFirstTick(t *testing.T) {
	m, _ := newTestModel(t, 10)

	view := m.View()
	require.Contains(t, view, common.SentinelLanguage)
	require.Contains(t, view, common.SentinelGreeting)
	require.Contains(t, view, "0 / 10")
	require.NotNil(t, m.Init())
}

func TestModel_FollowsRotation(t *testing.T) {
	req := require.New(t)
	m, r := newTestModel(t, 10)

	req.NotNil(tick(m), "live timer is re-armed")
	req.Equal("English", m.language)
	req.Equal("Hello World!", m.greeting)

	tick(m)
	view := m.View()
	req.Contains(view, "French")
	req.Contains(view, "Bonjour le monde!")
	req.Contains(view, "2 / 10")
	req.Equal(2, r.TickCount())
}

func TestModel_FinishesAtMaxCount(t *testing.T) {
	req := require.New(t)
	m, r := newTestModel(t, 3)

	tick(m)
	tick(m)
	req.Nil(tick(m), "stopped timer is not re-armed")

	req.True(m.finished)
	req.Equal(rotator.Stopped, r.State())
	req.Contains(m.View(), "Finished")

	// A tick already in flight when the timer stopped changes nothing.
	req.Nil(tick(m))
	req.Equal(3, r.TickCount())
	req.Equal("German", m.language)
}

func TestModel_QuitStopsRotator(t *testing.T) {
	req := require.New(t)
	m, r := newTestModel(t, 10)
	tick(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	req.NotNil(cmd)
	req.IsType(tea.QuitMsg{}, cmd())
	req.Equal(rotator.Stopped, r.State())

	// Bindings are detached, so a late change is not rendered.
	req.Nil(tick(m))
	req.Equal("English", m.language)
}

func TestModel_IgnoresOtherKeys(t *testing.T) {
	m, r := newTestModel(t, 10)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Nil(t, cmd)
	require.Equal(t, rotator.Running, r.State())
}

func TestModel_WindowResizeClampsProgress(t *testing.T) {
	m, _ := newTestModel(t, 10)

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	require.Equal(t, maxProgressWidth, m.progress.Width)

	m.Update(tea.WindowSizeMsg{Width: 12, Height: 40})
	require.Equal(t, 10, m.progress.Width)
}

func TestScheduler_UnknownTimerIgnored(t *testing.T) {
	s := NewScheduler()
	require.Nil(t, s.handle(tickMsg{id: 3}))
	require.Nil(t, s.handle(tickMsg{id: -1}))
}
