// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors, borders, and text styles used across components

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#29B5E8") // Snowflake blue
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Surface   = lipgloss.Color("#374151") // Elevated surface background
	Accent    = lipgloss.Color("#7DD3FC") // Light blue for highlights

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// List cursor styles
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Normal = lipgloss.NewStyle().
		Foreground(Text)

	ErrorText = lipgloss.NewStyle().
			Foreground(Danger)
)
