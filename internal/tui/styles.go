// Package tui provides the interactive terminal interface for Taskline.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	ColorPrimary  = lipgloss.Color("#7C3AED") // Purple
	ColorSelected = lipgloss.Color("#F59E0B") // Yellow
	ColorMuted    = lipgloss.Color("#6B7280") // Gray
	ColorError    = lipgloss.Color("#EF4444") // Red
	ColorBorder   = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleGroupTitle is used for per-day group headers.
	StyleGroupTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSelected is used for the selected task row.
	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSelected)

	// StyleDone is used for completed task rows.
	StyleDone = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for the help bar at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleFieldLabel is used for form field labels.
	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBox frames list and detail panes.
	StyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleFieldBox frames an inactive form field.
	StyleFieldBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// StyleFieldBoxActive frames the field being edited.
	StyleFieldBoxActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSelected).
				Padding(0, 1)
)
