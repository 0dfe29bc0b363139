// ABOUTME: Tests for warehouse size parsing and naming
// ABOUTME: Covers canonical names, aliases, and JSON encoding

package calc

import (
	"encoding/json"
	"testing"
)

func TestParseWarehouseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    WarehouseSize
		wantErr bool
	}{
		{"X-Small", SizeXSmall, false},
		{"x-small", SizeXSmall, false},
		{"xsmall", SizeXSmall, false},
		{"xs", SizeXSmall, false},
		{"Medium", SizeMedium, false},
		{"m", SizeMedium, false},
		{"2X-Large", Size2XLarge, false},
		{"2xlarge", Size2XLarge, false},
		{"2xl", Size2XLarge, false},
		{"6X-Large", Size6XLarge, false},
		{"  Large  ", SizeLarge, false},
		{"gigantic", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseWarehouseSize(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("expected %v for %q, got %v", tc.want, tc.input, got)
			}
		})
	}
}

func TestWarehouseSizeString(t *testing.T) {
	if SizeXSmall.String() != "X-Small" {
		t.Errorf("expected X-Small, got %s", SizeXSmall.String())
	}
	if Size6XLarge.String() != "6X-Large" {
		t.Errorf("expected 6X-Large, got %s", Size6XLarge.String())
	}
}

func TestAllSizesOrdered(t *testing.T) {
	sizes := AllSizes()
	if len(sizes) != 10 {
		t.Fatalf("expected 10 sizes, got %d", len(sizes))
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Errorf("sizes not ascending at index %d", i)
		}
	}
}

func TestWarehouseSizeJSON(t *testing.T) {
	data, err := json.Marshal(Size3XLarge)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"3X-Large"` {
		t.Errorf("expected \"3X-Large\", got %s", data)
	}

	var size WarehouseSize
	if err := json.Unmarshal([]byte(`"Small"`), &size); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if size != SizeSmall {
		t.Errorf("expected Small, got %v", size)
	}

	if err := json.Unmarshal([]byte(`"huge"`), &size); err == nil {
		t.Error("expected error for unknown size name")
	}
}
