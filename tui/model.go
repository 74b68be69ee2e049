// Package tui provides the terminal surface for Greeter, built on
// Bubble Tea. The model binds one way to the rotator's observable values
// and never writes back.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/greeter/common"
	"github.com/yllada/greeter/observable"
	"github.com/yllada/greeter/rotator"
)

const maxProgressWidth = 40

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model renders the current language and greeting.
type Model struct {
	rotator   *rotator.Rotator
	scheduler *Scheduler

	language string
	greeting string
	ticks    int
	finished bool

	progress progress.Model
	help     help.Model
	keys     keyMap
	width    int

	unsubscribe []observable.Unsubscribe
}

// NewModel binds a model to r. The rotator must have been built on
// scheduler so its ticks reach Update.
func NewModel(r *rotator.Rotator, scheduler *Scheduler) *Model {
	m := &Model{
		rotator:   r,
		scheduler: scheduler,
		language:  r.Language().Get(),
		greeting:  r.Greeting().Get(),
		ticks:     r.TickCount(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(maxProgressWidth),
			progress.WithoutPercentage(),
		),
		help: help.New(),
		keys: defaultKeys,
	}

	m.unsubscribe = append(m.unsubscribe,
		r.Language().Subscribe(func(v string) { m.language = v }),
		r.Greeting().Subscribe(func(v string) { m.greeting = v }),
		r.Ticks().Subscribe(func(v int) { m.ticks = v }),
	)
	return m
}

// Init starts the rotation ticks.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(common.AppName),
		m.scheduler.Init(),
	)
}

// Update handles ticks, keys, and resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		cmd := m.scheduler.handle(msg)
		if m.rotator.State() == rotator.Stopped && !m.finished {
			m.finished = true
			common.LogInfo("Rotation finished after %d greetings", m.ticks)
		}
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.Close()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(maxProgressWidth, max(msg.Width-8, 10))
	}

	return m, nil
}

// View renders the model.
func (m *Model) View() string {
	var greeting string
	if m.ticks == 0 {
		greeting = placeholderStyle.Render(m.greeting)
	} else {
		greeting = greetingStyle.Render(m.greeting)
	}

	opts := m.rotator.Options()
	status := statusStyle.Render(fmt.Sprintf("%d / %d", m.ticks, opts.MaxCount))
	if m.finished {
		status = finishedStyle.Render("Finished") + statusStyle.Render(fmt.Sprintf(" · %d greetings", m.ticks))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		languageStyle.Render(m.language),
		greeting,
		m.progress.ViewAs(float64(m.ticks)/float64(opts.MaxCount)),
		status,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		frameStyle.Render(body),
		m.help.View(m.keys),
	) + "\n"
}

// Close detaches the bindings and stops the rotator. It is idempotent.
func (m *Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
	m.rotator.Stop()
}

// Run shows the TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, r *rotator.Rotator, scheduler *Scheduler) error {
	model := NewModel(r, scheduler)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
