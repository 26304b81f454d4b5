package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for divergence diff rendering.
var (
	DiffAddStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	DiffDelStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
