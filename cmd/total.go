// ABOUTME: Batch totals command for a saved workload file
// ABOUTME: Prints per-workload breakdowns and the combined total

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
	"github.com/markalston/snowflake-workload-calculator/internal/workloadfile"
)

var totalFile string

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Total credits for a saved workload file",
	Long: `Load workloads from a JSON file and print per-workload costs plus the grand total.

The file format matches what the interactive mode exports (a JSON array of workloads).

Exit codes:
  0 - Totals computed
  2 - Error (file missing, invalid workloads, bad configuration)

Example:
  snowcalc total --file snowcalc-workloads.json --json`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runTotal(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(totalCmd)
	totalCmd.Flags().StringVar(&totalFile, "file", "snowcalc-workloads.json", "Path to the workload JSON file")
}

// workloadResult pairs a workload with its breakdown in JSON output
type workloadResult struct {
	Workload  calc.WorkloadProfile `json:"workload"`
	Breakdown calc.CostBreakdown   `json:"breakdown"`
}

// totalResult is the JSON output shape for the total command
type totalResult struct {
	Workloads []workloadResult   `json:"workloads"`
	Total     calc.CostBreakdown `json:"total"`
}

// runTotal loads the file, computes all costs, and returns an exit code
func runTotal(w io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	rates, err := cfg.RateTable()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	session, err := workloadfile.Load(totalFile, rates, cfg.Pricing())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	workloads := session.Workloads()
	results := make([]workloadResult, 0, len(workloads))
	for _, workload := range workloads {
		breakdown, err := session.ComputeCost(workload.Name)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		results = append(results, workloadResult{Workload: *workload, Breakdown: breakdown})
	}
	total := session.ComputeTotal()

	if IsJSONOutput() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(totalResult{Workloads: results, Total: total})
		return 0
	}

	fmt.Fprintf(w, "Workload Totals (%d workloads)\n", len(workloads))
	fmt.Fprintf(w, "==============================\n\n")
	for _, r := range results {
		fmt.Fprintf(w, "%-20s %-9s ×%-3d %5.1fh/day %4.1fd/wk %10.2f cr/day\n",
			r.Workload.Name, r.Workload.Size, r.Workload.Count,
			r.Workload.UptimeHours, r.Workload.DaysPerWeek, r.Breakdown.DailyCredits)
	}
	fmt.Fprintf(w, "\nTotal\n-----\n")
	printBreakdown(w, total, cfg.CreditPrice)

	return 0
}
