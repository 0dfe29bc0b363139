// ABOUTME: Tests for the rates command
// ABOUTME: Verifies default table output and override file handling

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRatesCommand_Defaults(t *testing.T) {
	ratesFile = ""
	jsonOutput = false

	var buf bytes.Buffer
	exitCode := runRates(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}
	output := buf.String()
	for _, want := range []string{"X-Small", "Medium", "6X-Large", "512.0"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRatesCommand_JSON(t *testing.T) {
	ratesFile = ""
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	exitCode := runRates(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}

	var parsed map[string]float64
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if len(parsed) != 10 {
		t.Errorf("expected 10 sizes, got %d", len(parsed))
	}
	if parsed["Medium"] != 4 {
		t.Errorf("expected Medium rate 4, got %g", parsed["Medium"])
	}
}

func TestRatesCommand_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte(`{"Medium": 4.5}`), 0o644); err != nil {
		t.Fatalf("writing rates file: %v", err)
	}

	ratesFile = path
	jsonOutput = true
	defer func() {
		ratesFile = ""
		jsonOutput = false
	}()

	var buf bytes.Buffer
	exitCode := runRates(&buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\noutput: %s", exitCode, buf.String())
	}

	var parsed map[string]float64
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["Medium"] != 4.5 {
		t.Errorf("expected overridden Medium rate 4.5, got %g", parsed["Medium"])
	}
	if parsed["Large"] != 8 {
		t.Errorf("expected untouched Large rate 8, got %g", parsed["Large"])
	}
}

func TestRatesCommand_BadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte(`{"Colossal": 9000}`), 0o644); err != nil {
		t.Fatalf("writing rates file: %v", err)
	}

	ratesFile = path
	defer func() { ratesFile = "" }()

	var buf bytes.Buffer
	exitCode := runRates(&buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2 for unknown size name, got %d", exitCode)
	}
}
