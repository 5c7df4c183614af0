package ui

import "github.com/charmbracelet/lipgloss"

// Styles for human-facing status lines on stderr. Report output itself is
// plain markdown and never styled.

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
)

// Success renders s as a success status line.
func Success(s string) string { return successStyle.Render(s) }

// Warn renders s as a warning status line.
func Warn(s string) string { return warnStyle.Render(s) }

// Error renders s as an error status line.
func Error(s string) string { return errorStyle.Render(s) }
