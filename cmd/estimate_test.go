// ABOUTME: Tests for the estimate command
// ABOUTME: Verifies output formats, flag validation, and exit codes

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func resetEstimateFlags() {
	estimateName = "workload"
	estimateSize = "X-Small"
	estimateCount = 1
	estimateUptime = 8
	estimateDays = 5
	jsonOutput = false
}

func TestEstimateCommand_Defaults(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}
	// X-Small, 1 warehouse, 8h, 5 days: 1 * 1 * 8 * 5/7 ≈ 5.71 credits/day
	if !strings.Contains(buf.String(), "5.71") {
		t.Errorf("expected daily credits 5.71 in output, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "X-Small") {
		t.Errorf("expected size name in output, got:\n%s", buf.String())
	}
}

func TestEstimateCommand_SizeAlias(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()

	estimateSize = "m"
	estimateCount = 2

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}
	// Medium = 4 credits/hr: 4 * 2 * 8 * 5/7 ≈ 45.71 credits/day
	if !strings.Contains(buf.String(), "45.71") {
		t.Errorf("expected daily credits 45.71 in output, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Medium") {
		t.Errorf("expected canonical size name in output, got:\n%s", buf.String())
	}
}

func TestEstimateCommand_InvalidSize(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()

	estimateSize = "gigantic"

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2 for invalid size, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "Error") {
		t.Errorf("expected error message, got:\n%s", buf.String())
	}
}

func TestEstimateCommand_InvalidUptime(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()

	estimateUptime = 25

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2 for uptime > 24, got %d", exitCode)
	}
}

func TestEstimateCommand_InvalidCount(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()

	estimateCount = 0

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2 for count 0, got %d", exitCode)
	}
}

func TestEstimateCommand_JSON(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()

	jsonOutput = true
	estimateName = "etl"
	estimateSize = "Large"

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}

	var parsed estimateResult
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed.Workload.Name != "etl" {
		t.Errorf("expected name etl, got %q", parsed.Workload.Name)
	}
	if parsed.RateHour != 8 {
		t.Errorf("expected Large rate 8, got %g", parsed.RateHour)
	}
	// 8 * 1 * 8 * 5/7 ≈ 45.714
	if parsed.Breakdown.DailyCredits < 45.71 || parsed.Breakdown.DailyCredits > 45.72 {
		t.Errorf("expected daily credits ≈45.71, got %g", parsed.Breakdown.DailyCredits)
	}
}

func TestEstimateCommand_CreditPrice(t *testing.T) {
	resetEstimateFlags()
	defer resetEstimateFlags()
	t.Setenv("SNOWCALC_CREDIT_PRICE", "3.00")

	var buf bytes.Buffer
	exitCode := runEstimate(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "$") {
		t.Errorf("expected dollar amounts with credit price set, got:\n%s", buf.String())
	}
}
