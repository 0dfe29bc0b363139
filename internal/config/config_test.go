// ABOUTME: Tests for configuration loading
// ABOUTME: Covers env overrides, validation, and rates file handling

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("SNOWCALC_RATES_FILE")
	os.Unsetenv("SNOWCALC_CREDIT_PRICE")
	os.Unsetenv("SNOWCALC_MONTHLY_DAYS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CreditPrice != 0 {
		t.Errorf("expected credit price 0, got %g", cfg.CreditPrice)
	}
	if cfg.MonthlyDays != calc.DefaultMonthlyDays {
		t.Errorf("expected monthly days %g, got %g", calc.DefaultMonthlyDays, cfg.MonthlyDays)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("SNOWCALC_CREDIT_PRICE", "2.5")
	os.Setenv("SNOWCALC_MONTHLY_DAYS", "30")
	defer os.Unsetenv("SNOWCALC_CREDIT_PRICE")
	defer os.Unsetenv("SNOWCALC_MONTHLY_DAYS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CreditPrice != 2.5 {
		t.Errorf("expected credit price 2.5, got %g", cfg.CreditPrice)
	}
	if cfg.MonthlyDays != 30 {
		t.Errorf("expected monthly days 30, got %g", cfg.MonthlyDays)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative credit price", "SNOWCALC_CREDIT_PRICE", "-1"},
		{"zero monthly days", "SNOWCALC_MONTHLY_DAYS", "0"},
		{"monthly days too high", "SNOWCALC_MONTHLY_DAYS", "45"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv(tc.key, tc.value)
			defer os.Unsetenv(tc.key)

			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestRateTableWithoutFile(t *testing.T) {
	cfg := &Config{MonthlyDays: 30.44}

	table, err := cfg.RateTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Rate(calc.SizeMedium) != 4 {
		t.Errorf("expected default Medium rate 4, got %g", table.Rate(calc.SizeMedium))
	}
}

func TestRateTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte(`{"X-Small": 1.1, "Small": 2.2}`), 0o644); err != nil {
		t.Fatalf("writing rates file: %v", err)
	}

	cfg := &Config{RatesFile: path, MonthlyDays: 30.44}
	table, err := cfg.RateTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Rate(calc.SizeXSmall) != 1.1 {
		t.Errorf("expected overridden rate 1.1, got %g", table.Rate(calc.SizeXSmall))
	}
	if table.Rate(calc.SizeLarge) != 8 {
		t.Errorf("expected default Large rate 8, got %g", table.Rate(calc.SizeLarge))
	}
}

func TestRateTableMissingFile(t *testing.T) {
	cfg := &Config{RatesFile: "/nonexistent/rates.json", MonthlyDays: 30.44}

	if _, err := cfg.RateTable(); err == nil {
		t.Error("expected error for missing rates file")
	}
}

func TestRateTableBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte(`{"Gigantic": 9}`), 0o644); err != nil {
		t.Fatalf("writing rates file: %v", err)
	}

	cfg := &Config{RatesFile: path, MonthlyDays: 30.44}
	if _, err := cfg.RateTable(); err == nil {
		t.Error("expected error for unknown size in rates file")
	}
}

func TestPricing(t *testing.T) {
	cfg := &Config{CreditPrice: 3, MonthlyDays: 30}

	p := cfg.Pricing()
	if p.CreditPrice != 3 || p.MonthlyDays != 30 {
		t.Errorf("unexpected pricing: %+v", p)
	}
}
