// ABOUTME: Error kinds returned by session operations
// ABOUTME: All are recoverable; state is never mutated on error

package calc

import "fmt"

// DuplicateNameError is returned when a workload name is already in use
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("workload %q already exists", e.Name)
}

// NotFoundError is returned when no workload has the given name
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workload %q not found", e.Name)
}

// ValidationError is returned when a field value violates its invariant
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
