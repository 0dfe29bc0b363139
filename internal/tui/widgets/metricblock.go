// ABOUTME: Compact metric block widget for credit totals
// ABOUTME: Renders icon, value, and subtitle in a title-in-border panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/snowflake-workload-calculator/internal/tui/icons"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       24,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#29B5E8"), // Snowflake blue
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title string, value string, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}

	// Inner width accounts for border and padding
	innerWidth := config.Width - 4

	titleStr := fmt.Sprintf("%s %s", icon.String(), title)
	if len(titleStr) > innerWidth {
		titleStr = titleStr[:innerWidth]
	}

	titleStyle := lipgloss.NewStyle().Foreground(config.TitleColor)

	// Box is built by hand for the title-in-border effect
	topBorder := fmt.Sprintf("┌─ %s %s┐",
		titleStyle.Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-len(titleStr)-1)))

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	valuePadding := max(0, innerWidth-len(value))
	valueLine := fmt.Sprintf("│  %s%s│", valueStyle.Render(value), strings.Repeat(" ", valuePadding))

	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	sub := truncate(subtitle, innerWidth)
	subPadding := max(0, innerWidth-len(sub))
	subtitleLine := fmt.Sprintf("│  %s%s│", subtitleStyle.Render(sub), strings.Repeat(" ", subPadding))

	bottomBorder := fmt.Sprintf("└%s┘", strings.Repeat("─", config.Width-2))

	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder),
		borderStyle.Render(valueLine),
		borderStyle.Render(subtitleLine),
		borderStyle.Render(bottomBorder),
	}, "\n")
}

// truncate shortens a string to maxLen with ellipsis if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
