// ABOUTME: Rates command printing the active credit rate table
// ABOUTME: Reflects any overrides loaded from SNOWCALC_RATES_FILE

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the active warehouse rate table",
	Long: `Print the credits-per-hour rate for each warehouse size.

Overrides from SNOWCALC_RATES_FILE (or --rates-file) are applied before printing,
so the output always reflects the rates the calculator will use.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runRates(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

// runRates prints the rate table and returns an exit code
func runRates(w io.Writer) int {
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

	if IsJSONOutput() {
		out := make(map[string]float64, len(rates))
		for _, size := range calc.AllSizes() {
			out[size.String()] = rates.Rate(size)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return 0
	}

	fmt.Fprintf(w, "Warehouse Rates (credits/hour)\n")
	fmt.Fprintf(w, "==============================\n\n")
	for _, size := range calc.AllSizes() {
		fmt.Fprintf(w, "%-10s %8.1f\n", size, rates.Rate(size))
	}
	if cfg.CreditPrice > 0 {
		fmt.Fprintf(w, "\nCredit price: $%.2f\n", cfg.CreditPrice)
	}

	return 0
}
