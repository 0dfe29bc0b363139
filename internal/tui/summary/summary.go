// ABOUTME: Summary screen with per-workload cost table and totals
// ABOUTME: Totals render as metric blocks, currency shown when configured

package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/icons"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/styles"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/widgets"
)

// Summary renders the full cost breakdown for a session
type Summary struct {
	session *calc.Session
	width   int
}

// New creates a summary view over the given session
func New(session *calc.Session, width int) *Summary {
	return &Summary{session: session, width: width}
}

// SetWidth updates the render width
func (s *Summary) SetWidth(width int) {
	s.width = width
}

// View renders the summary table and total metric blocks
func (s *Summary) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Workload Summary"))
	b.WriteString("\n\n")

	if s.session.Len() == 0 {
		b.WriteString(styles.Help.Render("No workloads to summarize."))
		return b.String()
	}

	b.WriteString(s.renderTable())
	b.WriteString("\n\n")
	b.WriteString(s.renderTotals())

	return b.String()
}

const rowFormat = "%-20s %-9s %4s %7s %6s %12s %12s %14s"

// renderTable renders the per-workload breakdown rows
func (s *Summary) renderTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(styles.Muted).Bold(true)
	totalStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	var b strings.Builder

	header := fmt.Sprintf(rowFormat,
		"Workload", "Size", "Wh", "Hrs/day", "Days", "Daily cr", "Monthly cr", "Annual cr")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")

	for _, w := range s.session.Workloads() {
		cost, _ := s.session.ComputeCost(w.Name)
		row := fmt.Sprintf(rowFormat,
			truncateName(w.Name, 20),
			w.Size.String(),
			fmt.Sprintf("%d", w.Count),
			fmt.Sprintf("%.1f", w.UptimeHours),
			fmt.Sprintf("%.1f", w.DaysPerWeek),
			formatCredits(cost.DailyCredits),
			formatCredits(cost.MonthlyCredits),
			formatCredits(cost.AnnualCredits),
		)
		b.WriteString(styles.Normal.Render(row))
		b.WriteString("\n")
	}

	total := s.session.ComputeTotal()
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")
	totalRow := fmt.Sprintf(rowFormat,
		"TOTAL", "", "", "", "",
		formatCredits(total.DailyCredits),
		formatCredits(total.MonthlyCredits),
		formatCredits(total.AnnualCredits),
	)
	b.WriteString(totalStyle.Render(totalRow))

	return b.String()
}

// renderTotals renders the aggregate figures as metric blocks
func (s *Summary) renderTotals() string {
	total := s.session.ComputeTotal()
	pricing := s.session.Pricing()

	config := widgets.DefaultMetricBlockConfig()

	daily := widgets.MetricBlock(icons.Credit, "Daily",
		formatCredits(total.DailyCredits), subtitleFor(total.DailyCost, pricing), config)
	monthly := widgets.MetricBlock(icons.Calendar, "Monthly",
		formatCredits(total.MonthlyCredits), subtitleFor(total.MonthlyCost, pricing), config)
	annual := widgets.MetricBlock(icons.Calendar, "Annual",
		formatCredits(total.AnnualCredits), subtitleFor(total.AnnualCost, pricing), config)

	return lipgloss.JoinHorizontal(lipgloss.Top, daily, " ", monthly, " ", annual)
}

// subtitleFor returns the currency line for a metric block, or the
// credits unit when no credit price is configured
func subtitleFor(cost float64, pricing calc.Pricing) string {
	if pricing.CreditPrice <= 0 {
		return "credits"
	}
	return fmt.Sprintf("$%.2f", cost)
}

// formatCredits renders a credit figure with thousands separators
func formatCredits(credits float64) string {
	formatted := fmt.Sprintf("%.2f", credits)

	dot := strings.Index(formatted, ".")
	intPart, fracPart := formatted[:dot], formatted[dot:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + fracPart
}

// truncateName shortens long workload names for the fixed-width row
func truncateName(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	return name[:maxLen-3] + "..."
}
