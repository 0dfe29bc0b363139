// ABOUTME: Workload editor form as a bubbletea model
// ABOUTME: Uses a huh form with validators mirroring the cost model invariants

package form

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

// CompleteMsg is sent when the form finishes successfully
type CompleteMsg struct {
	Name        string
	Size        calc.WarehouseSize
	Count       int
	UptimeHours float64
	DaysPerWeek float64
}

// CancelledMsg is sent when the form is cancelled
type CancelledMsg struct{}

// Form edits one workload profile's fields
type Form struct {
	name  string
	form  *huh.Form
	width int

	// Form field values (strings for huh)
	size   string
	count  string
	uptime string
	days   string
}

// createTheme returns a custom huh theme matching the app palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	blue := lipgloss.Color("#29B5E8")      // Snowflake blue - primary
	blueLight := lipgloss.Color("#7DD3FC") // Light blue - accents
	gray := lipgloss.Color("#9CA3AF")      // Gray-400 - muted
	grayLight := lipgloss.Color("#E5E7EB") // Gray-200 - text
	red := lipgloss.Color("#F87171")       // Red-400 - errors
	slate := lipgloss.Color("#334155")     // Slate-700 - borders

	t.Group.Title = lipgloss.NewStyle().
		Foreground(blue).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(blue)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(blueLight).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(blue).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(grayLight)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(blue).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(blue)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(blue)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(blue).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(gray).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(gray)

	return t
}

// sizeOptions lists every warehouse size with its credits/hour rate
func sizeOptions(rates calc.RateTable) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(calc.AllSizes()))
	for _, size := range calc.AllSizes() {
		label := fmt.Sprintf("%s (%g credits/hr)", size, rates.Rate(size))
		options = append(options, huh.NewOption(label, size.String()))
	}
	return options
}

// New creates an editor form prefilled from the given workload
func New(w *calc.WorkloadProfile, rates calc.RateTable) *Form {
	f := &Form{
		name:   w.Name,
		size:   w.Size.String(),
		count:  strconv.Itoa(w.Count),
		uptime: strconv.FormatFloat(w.UptimeHours, 'f', -1, 64),
		days:   strconv.FormatFloat(w.DaysPerWeek, 'f', -1, 64),
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Warehouse size").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(sizeOptions(rates)...).
				Value(&f.size),
			huh.NewInput().
				Title("Number of warehouses").
				Description("Concurrently running warehouses of this size").
				Placeholder("e.g., 1").
				CharLimit(4).
				Value(&f.count).
				Validate(validateCount),
			huh.NewInput().
				Title("Average daily uptime (hours)").
				Description("Hours the warehouses run per active day").
				Placeholder("e.g., 8").
				CharLimit(5).
				Value(&f.uptime).
				Validate(validateUptime),
			huh.NewInput().
				Title("Active days per week").
				Description("Days per week this workload runs").
				Placeholder("e.g., 5").
				CharLimit(4).
				Value(&f.days).
				Validate(validateDays),
		).Title(fmt.Sprintf("Configure %s", w.Name)).
			Description("Esc cancels without applying changes"),
	).WithTheme(createTheme())

	return f
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		form, cmd := f.form.Update(msg)
		if h, ok := form.(*huh.Form); ok {
			f.form = h
		}
		return f, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := f.form.Update(msg)
	if h, ok := form.(*huh.Form); ok {
		f.form = h
	}

	if f.form.State == huh.StateCompleted {
		return f, f.complete()
	}

	return f, cmd
}

// complete parses the collected values and emits CompleteMsg.
// Validators already gated the inputs, so parsing cannot fail here.
func (f *Form) complete() tea.Cmd {
	size, _ := calc.ParseWarehouseSize(f.size)
	count, _ := strconv.Atoi(f.count)
	uptime, _ := strconv.ParseFloat(f.uptime, 64)
	days, _ := strconv.ParseFloat(f.days, 64)

	return func() tea.Msg {
		return CompleteMsg{
			Name:        f.name,
			Size:        size,
			Count:       count,
			UptimeHours: uptime,
			DaysPerWeek: days,
		}
	}
}

// View implements tea.Model
func (f *Form) View() string {
	return f.form.View()
}

func validateCount(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}

func validateUptime(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 24 {
		return fmt.Errorf("must be between 0 and 24")
	}
	return nil
}

func validateDays(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 7 {
		return fmt.Errorf("must be between 0 and 7")
	}
	return nil
}
