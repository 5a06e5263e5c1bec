package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	NameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
