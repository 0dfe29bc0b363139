// ABOUTME: Non-interactive single-workload estimate command
// ABOUTME: Allows CI/CD pipelines and scripts to price a workload

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

var (
	estimateName   string
	estimateSize   string
	estimateCount  int
	estimateUptime float64
	estimateDays   float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate credits for a single workload",
	Long: `Compute the credit cost breakdown for one workload without the interactive TUI.

Exit codes:
  0 - Estimate computed
  2 - Error (invalid input, bad configuration)

Example:
  snowcalc estimate --size medium --count 2 --uptime 8 --days 5 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runEstimate(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateName, "name", "workload", "Workload name for display")
	estimateCmd.Flags().StringVar(&estimateSize, "size", "X-Small", "Warehouse size (X-Small..6X-Large, or xs/s/m/l/xl/2xl...)")
	estimateCmd.Flags().IntVar(&estimateCount, "count", 1, "Number of warehouses")
	estimateCmd.Flags().Float64Var(&estimateUptime, "uptime", 8, "Average daily uptime in hours")
	estimateCmd.Flags().Float64Var(&estimateDays, "days", 5, "Active days per week")
}

// estimateResult is the JSON output shape for a single estimate
type estimateResult struct {
	Workload  calc.WorkloadProfile `json:"workload"`
	RateHour  float64              `json:"credits_per_hour"`
	Breakdown calc.CostBreakdown   `json:"breakdown"`
}

// runEstimate computes and prints the estimate, returning an exit code
func runEstimate(w io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	session, err := NewSession(cfg)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	size, err := calc.ParseWarehouseSize(estimateSize)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	workload, err := session.AddWorkload(estimateName)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	for _, update := range []struct {
		field string
		value any
	}{
		{calc.FieldSize, size},
		{calc.FieldCount, estimateCount},
		{calc.FieldUptime, estimateUptime},
		{calc.FieldDays, estimateDays},
	} {
		if err := session.UpdateField(workload.Name, update.field, update.value); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	breakdown, err := session.ComputeCost(workload.Name)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(estimateResult{
			Workload:  *workload,
			RateHour:  session.Rates().Rate(size),
			Breakdown: breakdown,
		})
		return 0
	}

	fmt.Fprintf(w, "Workload Estimate: %s\n", workload.Name)
	fmt.Fprintf(w, "==================\n\n")
	fmt.Fprintf(w, "Size:              %s (%g credits/hr)\n", workload.Size, session.Rates().Rate(size))
	fmt.Fprintf(w, "Warehouses:        %d\n", workload.Count)
	fmt.Fprintf(w, "Daily uptime:      %.1f hours\n", workload.UptimeHours)
	fmt.Fprintf(w, "Active days/week:  %.1f\n", workload.DaysPerWeek)
	fmt.Fprintf(w, "\n")
	printBreakdown(w, breakdown, cfg.CreditPrice)

	return 0
}

// printBreakdown writes the human-readable breakdown lines
func printBreakdown(w io.Writer, b calc.CostBreakdown, creditPrice float64) {
	if creditPrice > 0 {
		fmt.Fprintf(w, "Daily credits:     %.2f ($%.2f)\n", b.DailyCredits, b.DailyCost)
		fmt.Fprintf(w, "Monthly credits:   %.2f ($%.2f)\n", b.MonthlyCredits, b.MonthlyCost)
		fmt.Fprintf(w, "Annual credits:    %.2f ($%.2f)\n", b.AnnualCredits, b.AnnualCost)
		return
	}
	fmt.Fprintf(w, "Daily credits:     %.2f\n", b.DailyCredits)
	fmt.Fprintf(w, "Monthly credits:   %.2f\n", b.MonthlyCredits)
	fmt.Fprintf(w, "Annual credits:    %.2f\n", b.AnnualCredits)
}
