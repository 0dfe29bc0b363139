// ABOUTME: Configuration loader for the snowcalc CLI
// ABOUTME: Loads settings from .env and environment variables with defaults

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

type Config struct {
	RatesFile   string  // optional JSON rate table overrides
	CreditPrice float64 // price per credit for currency display (0 = disabled)
	MonthlyDays float64 // average days per month for monthly projections
}

// Load reads configuration from a .env file (if present) and the
// environment.
//
// Environment variables:
//
//	SNOWCALC_RATES_FILE    Path to a JSON rate table override
//	SNOWCALC_CREDIT_PRICE  Price per credit (default: 0, disables currency)
//	SNOWCALC_MONTHLY_DAYS  Days per month constant (default: 30.44)
func Load() (*Config, error) {
	// .env is a convenience for local use; absence is not an error
	_ = godotenv.Load()

	cfg := &Config{
		RatesFile:   os.Getenv("SNOWCALC_RATES_FILE"),
		CreditPrice: getEnvFloat("SNOWCALC_CREDIT_PRICE", 0),
		MonthlyDays: getEnvFloat("SNOWCALC_MONTHLY_DAYS", calc.DefaultMonthlyDays),
	}

	if cfg.CreditPrice < 0 {
		return nil, fmt.Errorf("SNOWCALC_CREDIT_PRICE must not be negative, got %g", cfg.CreditPrice)
	}
	if cfg.MonthlyDays <= 0 || cfg.MonthlyDays > 31 {
		return nil, fmt.Errorf("SNOWCALC_MONTHLY_DAYS must be between 0 and 31, got %g", cfg.MonthlyDays)
	}

	slog.Debug("configuration loaded",
		"rates_file", cfg.RatesFile,
		"credit_price", cfg.CreditPrice,
		"monthly_days", cfg.MonthlyDays)

	return cfg, nil
}

// RateTable builds the active rate table: standard defaults overlaid
// with the configured rates file, when set
func (c *Config) RateTable() (calc.RateTable, error) {
	table := calc.DefaultRateTable()
	if c.RatesFile == "" {
		return table, nil
	}

	data, err := os.ReadFile(c.RatesFile)
	if err != nil {
		return nil, fmt.Errorf("reading rates file: %w", err)
	}
	if err := table.MergeJSON(data); err != nil {
		return nil, fmt.Errorf("rates file %s: %w", c.RatesFile, err)
	}
	return table, nil
}

// Pricing returns the pricing configuration for cost computation
func (c *Config) Pricing() calc.Pricing {
	return calc.Pricing{
		MonthlyDays: c.MonthlyDays,
		CreditPrice: c.CreditPrice,
	}
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
