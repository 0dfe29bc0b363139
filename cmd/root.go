// ABOUTME: Root command for snowcalc CLI
// ABOUTME: Handles global flags, configuration, and TUI launch

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
	"github.com/markalston/snowflake-workload-calculator/internal/config"
	"github.com/markalston/snowflake-workload-calculator/internal/logger"
	"github.com/markalston/snowflake-workload-calculator/internal/tui"
)

var (
	jsonOutput  bool
	creditPrice float64
	ratesFile   string
)

// rootCmd is the base command; running it without a subcommand starts
// the interactive calculator
var rootCmd = &cobra.Command{
	Use:   "snowcalc",
	Short: "Snowflake workload credit calculator",
	Long: `snowcalc estimates Snowflake credit consumption for a set of workloads.

Run without arguments for the interactive calculator, or use the
estimate/total subcommands for scripting and CI pipelines.

Environment Variables:
  SNOWCALC_RATES_FILE    JSON rate table override (size name -> credits/hour)
  SNOWCALC_CREDIT_PRICE  Price per credit for currency display
  SNOWCALC_MONTHLY_DAYS  Days-per-month constant (default: 30.44)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		session, err := NewSession(cfg)
		if err != nil {
			return err
		}
		return tui.Run(session)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().Float64Var(&creditPrice, "credit-price", 0, "Price per credit (overrides SNOWCALC_CREDIT_PRICE)")
	rootCmd.PersistentFlags().StringVar(&ratesFile, "rates-file", "", "JSON rate table override (overrides SNOWCALC_RATES_FILE)")
}

// LoadConfig returns the effective configuration from flags and
// environment, flags taking priority
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if ratesFile != "" {
		cfg.RatesFile = ratesFile
	}
	if creditPrice < 0 {
		return nil, fmt.Errorf("--credit-price must not be negative")
	}
	if creditPrice > 0 {
		cfg.CreditPrice = creditPrice
	}
	return cfg, nil
}

// NewSession builds an empty session from the configuration
func NewSession(cfg *config.Config) (*calc.Session, error) {
	rates, err := cfg.RateTable()
	if err != nil {
		return nil, err
	}
	return calc.NewSession(rates, cfg.Pricing()), nil
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
