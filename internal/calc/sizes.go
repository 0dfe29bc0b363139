// ABOUTME: Warehouse size enumeration ordered from X-Small to 6X-Large
// ABOUTME: Provides parsing, display names, and JSON round-tripping

package calc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// WarehouseSize is a standard warehouse T-shirt size. The zero value is
// X-Small; sizes are ordered so larger sizes compare greater.
type WarehouseSize int

const (
	SizeXSmall WarehouseSize = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeXLarge
	Size2XLarge
	Size3XLarge
	Size4XLarge
	Size5XLarge
	Size6XLarge
)

// sizeNames holds the canonical display names in size order
var sizeNames = []string{
	"X-Small",
	"Small",
	"Medium",
	"Large",
	"X-Large",
	"2X-Large",
	"3X-Large",
	"4X-Large",
	"5X-Large",
	"6X-Large",
}

// shorthand aliases accepted on the CLI (e.g. --size xs)
var sizeAliases = map[string]WarehouseSize{
	"xs":  SizeXSmall,
	"s":   SizeSmall,
	"m":   SizeMedium,
	"l":   SizeLarge,
	"xl":  SizeXLarge,
	"2xl": Size2XLarge,
	"3xl": Size3XLarge,
	"4xl": Size4XLarge,
	"5xl": Size5XLarge,
	"6xl": Size6XLarge,
}

// String returns the canonical display name
func (s WarehouseSize) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return fmt.Sprintf("WarehouseSize(%d)", int(s))
	}
	return sizeNames[s]
}

// Valid reports whether s is one of the defined sizes
func (s WarehouseSize) Valid() bool {
	return s >= 0 && int(s) < len(sizeNames)
}

// AllSizes returns every defined size in ascending order
func AllSizes() []WarehouseSize {
	sizes := make([]WarehouseSize, len(sizeNames))
	for i := range sizeNames {
		sizes[i] = WarehouseSize(i)
	}
	return sizes
}

// ParseWarehouseSize parses a size name. Matching is case-insensitive
// and tolerant of missing hyphens ("xsmall", "2xlarge"); short aliases
// like "xs" and "2xl" are accepted too.
func ParseWarehouseSize(name string) (WarehouseSize, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if size, ok := sizeAliases[normalized]; ok {
		return size, nil
	}
	normalized = strings.ReplaceAll(normalized, "-", "")
	for i, canonical := range sizeNames {
		if strings.ReplaceAll(strings.ToLower(canonical), "-", "") == normalized {
			return WarehouseSize(i), nil
		}
	}
	return 0, fmt.Errorf("unknown warehouse size %q (valid: %s)", name, strings.Join(sizeNames, ", "))
}

// MarshalJSON encodes the size as its display name
func (s WarehouseSize) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid warehouse size %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a size from its display name
func (s *WarehouseSize) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseWarehouseSize(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
