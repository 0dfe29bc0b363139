// ABOUTME: Cursor list of workloads with inline daily credit figures
// ABOUTME: Pure view component; key routing stays in the root app model

package workloadlist

import (
	"fmt"
	"strings"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/styles"
)

// List renders the session's workloads with a movable cursor
type List struct {
	session *calc.Session
	cursor  int
	width   int
}

// New creates a list over the given session
func New(session *calc.Session) *List {
	return &List{session: session}
}

// SetWidth updates the render width
func (l *List) SetWidth(width int) {
	l.width = width
}

// MoveUp moves the cursor up one row
func (l *List) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor down one row
func (l *List) MoveDown() {
	if l.cursor < l.session.Len()-1 {
		l.cursor++
	}
}

// ClampCursor pulls the cursor back in range after a removal
func (l *List) ClampCursor() {
	if l.cursor >= l.session.Len() {
		l.cursor = l.session.Len() - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Selected returns the workload under the cursor, nil when empty
func (l *List) Selected() *calc.WorkloadProfile {
	workloads := l.session.Workloads()
	if l.cursor < 0 || l.cursor >= len(workloads) {
		return nil
	}
	return workloads[l.cursor]
}

// View renders the workload rows
func (l *List) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Workloads"))
	b.WriteString("\n\n")

	workloads := l.session.Workloads()
	if len(workloads) == 0 {
		b.WriteString(styles.Help.Render("No workloads yet. Press a to add one."))
		return b.String()
	}

	for i, w := range workloads {
		cursor := "  "
		style := styles.Normal
		if i == l.cursor {
			cursor = "> "
			style = styles.Selected
		}

		cost, _ := l.session.ComputeCost(w.Name)
		row := fmt.Sprintf("%-20s %-9s ×%-3d %5.1fh/day %4.1fd/wk %10.2f cr/day",
			truncateName(w.Name, 20), w.Size, w.Count, w.UptimeHours, w.DaysPerWeek, cost.DailyCredits)

		b.WriteString(cursor + style.Render(row) + "\n")
	}

	return b.String()
}

// truncateName shortens long workload names for the fixed-width row
func truncateName(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	return name[:maxLen-3] + "..."
}
