// ABOUTME: Credits-per-hour rate table keyed by warehouse size
// ABOUTME: Ships standard-warehouse defaults with JSON-based overrides

package calc

import (
	"encoding/json"
	"fmt"
)

// RateTable maps a warehouse size to its credits-per-hour rate
type RateTable map[WarehouseSize]float64

// DefaultRateTable returns the standard warehouse rates, doubling per
// size step from 1 credit/hour at X-Small
func DefaultRateTable() RateTable {
	table := make(RateTable, len(sizeNames))
	rate := 1.0
	for _, size := range AllSizes() {
		table[size] = rate
		rate *= 2
	}
	return table
}

// Rate returns the credits-per-hour rate for a size, 0 if unknown
func (rt RateTable) Rate(size WarehouseSize) float64 {
	return rt[size]
}

// Clone returns an independent copy of the table
func (rt RateTable) Clone() RateTable {
	out := make(RateTable, len(rt))
	for size, rate := range rt {
		out[size] = rate
	}
	return out
}

// MergeJSON overlays rates from a JSON object of size name to
// credits/hour. Partial tables are fine; unknown size names or
// non-positive rates reject the whole document without applying
// anything.
func (rt RateTable) MergeJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing rate table: %w", err)
	}

	parsed := make(map[WarehouseSize]float64, len(raw))
	for name, rate := range raw {
		size, err := ParseWarehouseSize(name)
		if err != nil {
			return fmt.Errorf("rate table: %w", err)
		}
		if rate <= 0 {
			return fmt.Errorf("rate table: rate for %s must be positive, got %g", size, rate)
		}
		parsed[size] = rate
	}

	for size, rate := range parsed {
		rt[size] = rate
	}
	return nil
}
