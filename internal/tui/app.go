// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/form"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/icons"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/styles"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/summary"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/widgets"
	"github.com/markalston/snowflake-workload-calculator/internal/tui/workloadlist"
	"github.com/markalston/snowflake-workload-calculator/internal/workloadfile"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenList Screen = iota
	ScreenForm
	ScreenSummary
)

// prompt is an inline input mode layered over the list screen
type prompt int

const (
	promptNone prompt = iota
	promptAdd
	promptRename
	promptDelete
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
)

// DefaultExportPath is where the summary screen writes the workload set
const DefaultExportPath = "snowcalc-workloads.json"

// App is the root model for the TUI
type App struct {
	session *calc.Session
	screen  Screen
	width   int
	height  int

	errMsg     string
	statusMsg  string
	exportPath string

	// Child models
	list        *workloadlist.List
	formScreen  *form.Form
	summaryView *summary.Summary

	// Inline prompt state
	prompt     prompt
	promptFor  string // workload addressed by rename/delete
	promptText textinput.Model
}

// New creates a new TUI application over a session
func New(session *calc.Session, exportPath string) *App {
	if exportPath == "" {
		exportPath = DefaultExportPath
	}

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40

	return &App{
		session:    session,
		screen:     ScreenList,
		exportPath: exportPath,
		list:       workloadlist.New(session),
		promptText: ti,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetWidth(a.listWidth())
		if a.summaryView != nil {
			a.summaryView.SetWidth(a.width - panelPadding)
		}
		if a.formScreen != nil {
			return a.updateForm(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.prompt != promptNone {
			return a.updatePrompt(msg)
		}

		switch a.screen {
		case ScreenList:
			return a.updateList(msg)
		case ScreenForm:
			return a.updateForm(msg)
		case ScreenSummary:
			return a.updateSummary(msg)
		}

	case form.CompleteMsg:
		return a.applyFormValues(msg)

	case form.CancelledMsg:
		a.screen = ScreenList
		a.formScreen = nil
		return a, nil

	default:
		// Forward unknown messages to the form when active (needed for huh internals)
		if a.screen == ScreenForm && a.formScreen != nil {
			return a.updateForm(msg)
		}
	}

	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.errMsg = ""
	a.statusMsg = ""

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "up", "k":
		a.list.MoveUp()
	case "down", "j":
		a.list.MoveDown()
	case "a":
		return a.openPrompt(promptAdd, "", a.session.NextName())
	case "r":
		if w := a.list.Selected(); w != nil {
			return a.openPrompt(promptRename, w.Name, w.Name)
		}
	case "d":
		if w := a.list.Selected(); w != nil {
			a.prompt = promptDelete
			a.promptFor = w.Name
		}
	case "enter", "e":
		if w := a.list.Selected(); w != nil {
			return a.openForm(w)
		}
	case "s":
		a.summaryView = summary.New(a.session, a.width-panelPadding)
		a.screen = ScreenSummary
	}

	return a, nil
}

func (a *App) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		a.screen = ScreenList
		a.summaryView = nil
		a.statusMsg = ""
		return a, nil
	case "w":
		if err := workloadfile.Save(a.exportPath, a.session); err != nil {
			a.errMsg = err.Error()
		} else {
			a.statusMsg = "Exported to " + a.exportPath
		}
		return a, nil
	}
	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.formScreen == nil {
		return a, nil
	}
	model, cmd := a.formScreen.Update(msg)
	a.formScreen = model.(*form.Form)
	return a, cmd
}

func (a *App) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation is a bare y/n, no text input
	if a.prompt == promptDelete {
		switch msg.String() {
		case "y", "Y":
			if err := a.session.RemoveWorkload(a.promptFor); err != nil {
				a.errMsg = err.Error()
			}
			a.list.ClampCursor()
			a.closePrompt()
		case "n", "N", "esc":
			a.closePrompt()
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.closePrompt()
		return a, nil
	case "enter":
		return a.submitPrompt()
	}

	var cmd tea.Cmd
	a.promptText, cmd = a.promptText.Update(msg)
	return a, cmd
}

// openPrompt starts an inline text prompt. target is the addressed
// workload for renames; value prefills the input.
func (a *App) openPrompt(kind prompt, target, value string) (tea.Model, tea.Cmd) {
	a.prompt = kind
	a.promptFor = target
	a.promptText.SetValue(value)
	a.promptText.CursorEnd()
	a.promptText.Focus()
	return a, textinput.Blink
}

func (a *App) closePrompt() {
	a.prompt = promptNone
	a.promptFor = ""
	a.promptText.Blur()
	a.promptText.SetValue("")
}

func (a *App) submitPrompt() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(a.promptText.Value())

	switch a.prompt {
	case promptAdd:
		if name == "" {
			name = a.session.NextName()
		}
		w, err := a.session.AddWorkload(name)
		if err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.closePrompt()
		return a.openForm(w)

	case promptRename:
		if err := a.session.RenameWorkload(a.promptFor, name); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.closePrompt()
	}

	return a, nil
}

func (a *App) openForm(w *calc.WorkloadProfile) (tea.Model, tea.Cmd) {
	a.formScreen = form.New(w, a.session.Rates())
	a.screen = ScreenForm
	return a, a.formScreen.Init()
}

// applyFormValues commits the completed form through the session's
// field operations
func (a *App) applyFormValues(msg form.CompleteMsg) (tea.Model, tea.Cmd) {
	updates := []struct {
		field string
		value any
	}{
		{calc.FieldSize, msg.Size},
		{calc.FieldCount, msg.Count},
		{calc.FieldUptime, msg.UptimeHours},
		{calc.FieldDays, msg.DaysPerWeek},
	}
	for _, u := range updates {
		if err := a.session.UpdateField(msg.Name, u.field, u.value); err != nil {
			a.errMsg = err.Error()
			break
		}
	}

	a.screen = ScreenList
	a.formScreen = nil
	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenList:
		content = a.viewList()
	case ScreenForm:
		content = a.viewForm()
	case ScreenSummary:
		content = a.viewSummary()
	default:
		content = a.viewList()
	}

	return a.wrapWithFrame(content)
}

// viewList renders the workload list with the totals pane
func (a *App) viewList() string {
	leftContent := a.list.View()

	if a.prompt != promptNone {
		leftContent += "\n" + a.viewPrompt()
	}
	if a.errMsg != "" {
		leftContent += "\n" + styles.ErrorText.Render("Error: "+a.errMsg)
	}

	leftPane := styles.ActivePanel.Width(a.listWidth()).Render(leftContent)
	rightPane := styles.Panel.Width(a.totalsWidth()).Render(a.viewTotals())

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewPrompt renders the active inline prompt
func (a *App) viewPrompt() string {
	switch a.prompt {
	case promptAdd:
		return "New workload name:\n" + a.promptText.View()
	case promptRename:
		return fmt.Sprintf("Rename %q to:\n%s", a.promptFor, a.promptText.View())
	case promptDelete:
		return styles.StatusWarning.Render(fmt.Sprintf("Delete %q? (y/n)", a.promptFor))
	}
	return ""
}

// viewTotals renders the aggregate consumption pane
func (a *App) viewTotals() string {
	total := a.session.ComputeTotal()
	pricing := a.session.Pricing()

	var b strings.Builder
	b.WriteString(styles.Title.Render(icons.Credit.String() + " Total Consumption"))
	b.WriteString("\n\n")

	config := widgets.DefaultMetricBlockConfig()
	config.Width = a.totalsWidth() - panelPadding
	if config.Width < 20 {
		config.Width = 20
	}

	subtitle := func(cost float64) string {
		if pricing.CreditPrice <= 0 {
			return "credits"
		}
		return fmt.Sprintf("$%.2f", cost)
	}

	b.WriteString(widgets.MetricBlock(icons.Credit, "Daily",
		fmt.Sprintf("%.2f", total.DailyCredits), subtitle(total.DailyCost), config))
	b.WriteString("\n")
	b.WriteString(widgets.MetricBlock(icons.Calendar, "Monthly",
		fmt.Sprintf("%.2f", total.MonthlyCredits), subtitle(total.MonthlyCost), config))
	b.WriteString("\n")
	b.WriteString(widgets.MetricBlock(icons.Calendar, "Annual",
		fmt.Sprintf("%.2f", total.AnnualCredits), subtitle(total.AnnualCost), config))

	return b.String()
}

// viewForm renders the workload editor screen
func (a *App) viewForm() string {
	if a.formScreen != nil {
		return styles.ActivePanel.Width(a.width - 2).Render(a.formScreen.View())
	}
	return ""
}

// viewSummary renders the summary screen
func (a *App) viewSummary() string {
	content := ""
	if a.summaryView != nil {
		content = a.summaryView.View()
	}
	if a.statusMsg != "" {
		content += "\n\n" + styles.StatusOK.Render(a.statusMsg)
	}
	if a.errMsg != "" {
		content += "\n\n" + styles.ErrorText.Render("Error: " + a.errMsg)
	}
	return styles.ActivePanel.Width(a.width - 2).Render(content)
}

// listWidth calculates the width for the workload list pane
func (a *App) listWidth() int {
	if a.width < minTerminalWidth {
		return a.width - panelPadding
	}
	return (a.width - panelPadding) * 2 / 3
}

// totalsWidth calculates the width for the totals pane
func (a *App) totalsWidth() int {
	return a.width - a.listWidth() - 4
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Snowflake Workload Calculator"))

	rightText := ""
	if a.session.Len() > 0 {
		label := "workloads"
		if a.session.Len() == 1 {
			label = "workload"
		}
		rightText = contextStyle.Render(fmt.Sprintf("%d %s", a.session.Len(), label)) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch {
	case a.prompt == promptDelete:
		shortcuts = []string{"y Confirm", "n Cancel"}
	case a.prompt != promptNone:
		shortcuts = []string{"Enter Confirm", "Esc Cancel"}
	case a.screen == ScreenList:
		shortcuts = []string{"↑↓ Navigate", "a Add", "Enter Edit", "r Rename", "d Delete", "s Summary", "q Quit"}
	case a.screen == ScreenForm:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case a.screen == ScreenSummary:
		shortcuts = []string{"w Export", "b Back", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	leftWidth := lipgloss.Width(leftPlainText)
	fillWidth := width - 4 - leftWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI over the given session
func Run(session *calc.Session) error {
	app := New(session, "")

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
