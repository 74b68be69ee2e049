package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#1c71d8", Dark: "#62a0ea"}
	muted  = lipgloss.AdaptiveColor{Light: "#77767b", Dark: "#9a9996"}
	done   = lipgloss.AdaptiveColor{Light: "#26a269", Dark: "#2ec27e"}

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4)

	languageStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	greetingStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(muted).
				Faint(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(muted)

	finishedStyle = lipgloss.NewStyle().
			Foreground(done).
			Bold(true)
)
