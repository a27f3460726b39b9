package portfolio

import (
	"testing"
	"time"

	"folio/internal/models"
)

func TestMonthKey(t *testing.T) {
	cases := []struct {
		name     string
		in       time.Time
		expected string
	}{
		{"single_digit_month", time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC), "2025_05"},
		{"double_digit_month", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), "2025_12"},
		{"january", time.Date(2026, time.January, 31, 23, 59, 0, 0, time.UTC), "2026_01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthKey(tc.in); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestReconcileMonthly(t *testing.T) {
	history := []models.PerformancePoint{
		{MonthKey: "2025_04", Value: 2.5},
		{MonthKey: "2025_05", Value: 3.1},
	}

	t.Run("same_month_same_value_is_noop", func(t *testing.T) {
		action, _ := ReconcileMonthly("2025_05", 3.10, history)
		if action != ActionNone {
			t.Errorf("expected no-op, got action %d", action)
		}
	})

	t.Run("same_month_new_value_updates", func(t *testing.T) {
		action, point := ReconcileMonthly("2025_05", 4.25, history)
		if action != ActionUpdate {
			t.Errorf("expected update, got action %d", action)
		}
		if point.MonthKey != "2025_05" {
			t.Errorf("expected month key 2025_05, got %s", point.MonthKey)
		}
		if point.Value != 4.25 {
			t.Errorf("expected value 4.25, got %f", point.Value)
		}
	})

	t.Run("new_month_appends", func(t *testing.T) {
		action, point := ReconcileMonthly("2025_06", 4.25, history)
		if action != ActionAppend {
			t.Errorf("expected append, got action %d", action)
		}
		if point.MonthKey != "2025_06" {
			t.Errorf("expected month key 2025_06, got %s", point.MonthKey)
		}
	})

	t.Run("empty_history_appends", func(t *testing.T) {
		action, point := ReconcileMonthly("2025_01", 0.0, nil)
		if action != ActionAppend {
			t.Errorf("expected append, got action %d", action)
		}
		if point.MonthKey != "2025_01" {
			t.Errorf("expected month key 2025_01, got %s", point.MonthKey)
		}
		if point.Value != 0 {
			t.Errorf("expected value 0, got %f", point.Value)
		}
	})

	t.Run("value_is_rounded_before_compare", func(t *testing.T) {
		// 3.1004 rounds to 3.1, matching the recorded value.
		action, _ := ReconcileMonthly("2025_05", 3.1004, history)
		if action != ActionNone {
			t.Errorf("expected no-op after rounding, got action %d", action)
		}

		action, point := ReconcileMonthly("2025_05", 3.105, history)
		if action != ActionUpdate {
			t.Errorf("expected update, got action %d", action)
		}
		if point.Value != 3.11 {
			t.Errorf("expected rounded value 3.11, got %f", point.Value)
		}
	})
}
