// ABOUTME: JSON load/save for workload sets
// ABOUTME: File input passes through session validation, same as the UI

package workloadfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

// Parse builds a session from a JSON array of workload records. Every
// record is validated through the session's own operations, so a file
// cannot smuggle in state the UI could not create.
func Parse(data []byte, rates calc.RateTable, pricing calc.Pricing) (*calc.Session, error) {
	var profiles []calc.WorkloadProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing workloads: %w", err)
	}

	session := calc.NewSession(rates, pricing)
	for i, p := range profiles {
		if _, err := session.AddProfile(p); err != nil {
			return nil, fmt.Errorf("workload %d (%q): %w", i+1, p.Name, err)
		}
	}
	return session, nil
}

// Load reads a workload set from a JSON file
func Load(path string, rates calc.RateTable, pricing calc.Pricing) (*calc.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workloads file: %w", err)
	}
	session, err := Parse(data, rates, pricing)
	if err != nil {
		return nil, err
	}
	slog.Debug("workloads loaded", "path", path, "count", session.Len())
	return session, nil
}

// Marshal encodes the session's workload set as indented JSON
func Marshal(s *calc.Session) ([]byte, error) {
	profiles := make([]calc.WorkloadProfile, 0, s.Len())
	for _, w := range s.Workloads() {
		profiles = append(profiles, *w)
	}
	return json.MarshalIndent(profiles, "", "  ")
}

// Save writes the session's workload set to a JSON file
func Save(path string, s *calc.Session) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing workloads file: %w", err)
	}
	slog.Debug("workloads saved", "path", path, "count", s.Len())
	return nil
}
