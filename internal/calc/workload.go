// ABOUTME: WorkloadProfile record and its per-field validation rules
// ABOUTME: Field rules are a table keyed by field name, not ad hoc checks

package calc

import (
	"fmt"
	"strings"
)

// Default field values for a newly added workload
const (
	DefaultSize        = SizeXSmall
	DefaultCount       = 1
	DefaultUptimeHours = 8.0
	DefaultDaysPerWeek = 5.0
)

// WorkloadProfile is one user-defined unit of recurring compute work
type WorkloadProfile struct {
	Name        string        `json:"name"`
	Size        WarehouseSize `json:"warehouse_size"`
	Count       int           `json:"warehouse_count"`
	UptimeHours float64       `json:"uptime_hours_per_day"`
	DaysPerWeek float64       `json:"active_days_per_week"`
}

// Field names accepted by UpdateField
const (
	FieldSize   = "warehouse_size"
	FieldCount  = "warehouse_count"
	FieldUptime = "uptime_hours_per_day"
	FieldDays   = "active_days_per_week"
)

// fieldRule validates a candidate value and, separately, applies it.
// Validation runs to completion before apply so a rejected update
// never leaves a partial mutation behind.
type fieldRule struct {
	validate func(value any) error
	apply    func(w *WorkloadProfile, value any)
}

var fieldRules = map[string]fieldRule{
	FieldSize: {
		validate: func(value any) error {
			size, err := coerceSize(value)
			if err != nil {
				return &ValidationError{Field: FieldSize, Reason: err.Error()}
			}
			if !size.Valid() {
				return &ValidationError{Field: FieldSize, Reason: "not a defined warehouse size"}
			}
			return nil
		},
		apply: func(w *WorkloadProfile, value any) {
			size, _ := coerceSize(value)
			w.Size = size
		},
	},
	FieldCount: {
		validate: func(value any) error {
			count, ok := value.(int)
			if !ok {
				return &ValidationError{Field: FieldCount, Reason: "must be an integer"}
			}
			if count < 1 {
				return &ValidationError{Field: FieldCount, Reason: "must be at least 1"}
			}
			return nil
		},
		apply: func(w *WorkloadProfile, value any) {
			w.Count = value.(int)
		},
	},
	FieldUptime: {
		validate: func(value any) error {
			hours, ok := coerceFloat(value)
			if !ok {
				return &ValidationError{Field: FieldUptime, Reason: "must be a number"}
			}
			if hours < 0 || hours > 24 {
				return &ValidationError{Field: FieldUptime, Reason: "must be between 0 and 24"}
			}
			return nil
		},
		apply: func(w *WorkloadProfile, value any) {
			hours, _ := coerceFloat(value)
			w.UptimeHours = hours
		},
	},
	FieldDays: {
		validate: func(value any) error {
			days, ok := coerceFloat(value)
			if !ok {
				return &ValidationError{Field: FieldDays, Reason: "must be a number"}
			}
			if days < 0 || days > 7 {
				return &ValidationError{Field: FieldDays, Reason: "must be between 0 and 7"}
			}
			return nil
		},
		apply: func(w *WorkloadProfile, value any) {
			days, _ := coerceFloat(value)
			w.DaysPerWeek = days
		},
	},
}

// Validate checks every field of the profile against its rule
func (w *WorkloadProfile) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for _, check := range []struct {
		field string
		value any
	}{
		{FieldSize, w.Size},
		{FieldCount, w.Count},
		{FieldUptime, w.UptimeHours},
		{FieldDays, w.DaysPerWeek},
	} {
		if err := fieldRules[check.field].validate(check.value); err != nil {
			return err
		}
	}
	return nil
}

// coerceSize accepts a WarehouseSize or a size name string
func coerceSize(value any) (WarehouseSize, error) {
	switch v := value.(type) {
	case WarehouseSize:
		return v, nil
	case string:
		return ParseWarehouseSize(v)
	default:
		return 0, fmt.Errorf("must be a warehouse size or size name")
	}
}

// coerceFloat accepts float64 or int values
func coerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
