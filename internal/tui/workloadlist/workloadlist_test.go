// ABOUTME: Tests for workload list cursor handling and rendering
// ABOUTME: Covers movement bounds, clamping after removal, and empty state

package workloadlist

import (
	"strings"
	"testing"

	"github.com/markalston/snowflake-workload-calculator/internal/calc"
)

func newSession(t *testing.T, names ...string) *calc.Session {
	t.Helper()
	s := calc.NewSession(nil, calc.DefaultPricing())
	for _, n := range names {
		if _, err := s.AddWorkload(n); err != nil {
			t.Fatalf("adding %s: %v", n, err)
		}
	}
	return s
}

func TestCursorMovement(t *testing.T) {
	l := New(newSession(t, "a", "b", "c"))

	if l.Selected().Name != "a" {
		t.Errorf("expected cursor on a, got %s", l.Selected().Name)
	}

	l.MoveUp() // already at top
	if l.Selected().Name != "a" {
		t.Errorf("cursor moved above top: %s", l.Selected().Name)
	}

	l.MoveDown()
	l.MoveDown()
	if l.Selected().Name != "c" {
		t.Errorf("expected cursor on c, got %s", l.Selected().Name)
	}

	l.MoveDown() // already at bottom
	if l.Selected().Name != "c" {
		t.Errorf("cursor moved below bottom: %s", l.Selected().Name)
	}
}

func TestClampCursorAfterRemoval(t *testing.T) {
	s := newSession(t, "a", "b")
	l := New(s)
	l.MoveDown()

	s.RemoveWorkload("b")
	l.ClampCursor()

	if l.Selected() == nil || l.Selected().Name != "a" {
		t.Errorf("expected cursor clamped to a, got %v", l.Selected())
	}
}

func TestSelectedEmptySession(t *testing.T) {
	l := New(newSession(t))
	if l.Selected() != nil {
		t.Error("expected nil selection for empty session")
	}
}

func TestViewEmptySession(t *testing.T) {
	l := New(newSession(t))
	view := l.View()
	if !strings.Contains(view, "No workloads yet") {
		t.Errorf("expected empty-state hint, got: %s", view)
	}
}

func TestViewShowsWorkloads(t *testing.T) {
	s := newSession(t, "reporting")
	s.UpdateField("reporting", calc.FieldSize, "Medium")
	l := New(s)

	view := l.View()
	if !strings.Contains(view, "reporting") {
		t.Errorf("expected workload name in view: %s", view)
	}
	if !strings.Contains(view, "Medium") {
		t.Errorf("expected size in view: %s", view)
	}
	if !strings.Contains(view, "cr/day") {
		t.Errorf("expected daily credits column in view: %s", view)
	}
}

func TestViewLongNameTruncated(t *testing.T) {
	s := newSession(t, "a-very-long-workload-name-that-overflows")
	l := New(s)

	view := l.View()
	if strings.Contains(view, "a-very-long-workload-name-that-overflows") {
		t.Error("expected long name to be truncated in view")
	}
	if !strings.Contains(view, "...") {
		t.Error("expected ellipsis for truncated name")
	}
}
