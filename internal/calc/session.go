// ABOUTME: Session owning the in-memory workload set and its operations
// ABOUTME: Explicit object, no package state; callers own the lifetime

package calc

import (
	"fmt"
	"strings"
)

// Session holds the workload profiles for one user session together
// with the rate table and pricing used for cost computation. All
// operations are synchronous; every mutation either fully applies or
// leaves the session unchanged.
type Session struct {
	rates     RateTable
	pricing   Pricing
	workloads []*WorkloadProfile
}

// NewSession creates an empty session. A nil rate table gets the
// standard defaults.
func NewSession(rates RateTable, pricing Pricing) *Session {
	if rates == nil {
		rates = DefaultRateTable()
	}
	if pricing.MonthlyDays <= 0 {
		pricing.MonthlyDays = DefaultMonthlyDays
	}
	return &Session{
		rates:   rates,
		pricing: pricing,
	}
}

// Rates returns the session's rate table
func (s *Session) Rates() RateTable {
	return s.rates
}

// Pricing returns the session's pricing configuration
func (s *Session) Pricing() Pricing {
	return s.pricing
}

// Workloads returns the profiles in insertion order. The slice is a
// copy; the profiles are the live records.
func (s *Session) Workloads() []*WorkloadProfile {
	out := make([]*WorkloadProfile, len(s.workloads))
	copy(out, s.workloads)
	return out
}

// Len returns the number of workloads in the session
func (s *Session) Len() int {
	return len(s.workloads)
}

// Lookup returns the workload with the given name, nil if absent
func (s *Session) Lookup(name string) *WorkloadProfile {
	for _, w := range s.workloads {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// NextName returns an auto-generated name not currently in use,
// following the "Workload N" convention
func (s *Session) NextName() string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("Workload %d", n)
		if s.Lookup(name) == nil {
			return name
		}
	}
}

// AddWorkload creates a profile with default field values. It fails
// with DuplicateNameError if the name is already taken.
func (s *Session) AddWorkload(name string) (*WorkloadProfile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if s.Lookup(name) != nil {
		return nil, &DuplicateNameError{Name: name}
	}

	w := &WorkloadProfile{
		Name:        name,
		Size:        DefaultSize,
		Count:       DefaultCount,
		UptimeHours: DefaultUptimeHours,
		DaysPerWeek: DefaultDaysPerWeek,
	}
	s.workloads = append(s.workloads, w)
	return w, nil
}

// AddProfile inserts a fully specified profile, validating every field.
// Used when loading a workload set from file.
func (s *Session) AddProfile(w WorkloadProfile) (*WorkloadProfile, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if s.Lookup(w.Name) != nil {
		return nil, &DuplicateNameError{Name: w.Name}
	}
	added := &w
	s.workloads = append(s.workloads, added)
	return added, nil
}

// RenameWorkload changes a workload's name. Renaming to the current
// name is a no-op; renaming onto another workload's name fails.
func (s *Session) RenameWorkload(oldName, newName string) error {
	w := s.Lookup(oldName)
	if w == nil {
		return &NotFoundError{Name: oldName}
	}
	if newName == oldName {
		return nil
	}
	if strings.TrimSpace(newName) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if s.Lookup(newName) != nil {
		return &DuplicateNameError{Name: newName}
	}
	w.Name = newName
	return nil
}

// RemoveWorkload deletes a workload. Removing an absent name is an
// error, not a silent no-op.
func (s *Session) RemoveWorkload(name string) error {
	for i, w := range s.workloads {
		if w.Name == name {
			s.workloads = append(s.workloads[:i], s.workloads[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Name: name}
}

// UpdateField sets one field on a workload after validating the value
// against the field's rule. Unknown fields and out-of-range values are
// ValidationErrors; nothing is applied on error.
func (s *Session) UpdateField(name, field string, value any) error {
	w := s.Lookup(name)
	if w == nil {
		return &NotFoundError{Name: name}
	}
	rule, ok := fieldRules[field]
	if !ok {
		return &ValidationError{Field: field, Reason: "unknown field"}
	}
	if err := rule.validate(value); err != nil {
		return err
	}
	rule.apply(w, value)
	return nil
}

// ComputeCost returns the cost breakdown for one workload
func (s *Session) ComputeCost(name string) (CostBreakdown, error) {
	w := s.Lookup(name)
	if w == nil {
		return CostBreakdown{}, &NotFoundError{Name: name}
	}
	return Breakdown(w, s.rates, s.pricing), nil
}

// ComputeTotal sums the cost breakdowns of all workloads. An empty
// session yields an all-zero breakdown.
func (s *Session) ComputeTotal() CostBreakdown {
	var total CostBreakdown
	for _, w := range s.workloads {
		total = total.Add(Breakdown(w, s.rates, s.pricing))
	}
	return total
}
