package portfolio

import (
	"fmt"
	"time"

	"folio/internal/models"
)

// Action is the outcome of a monthly performance reconciliation.
type Action int

const (
	// ActionNone leaves the history untouched.
	ActionNone Action = iota
	// ActionAppend adds a point for a month not yet recorded.
	ActionAppend
	// ActionUpdate overwrites the current month's point with a new value.
	ActionUpdate
)

// MonthKey formats a wall-clock time as the YYYY_MM key identifying one
// performance point (1-indexed month, zero-padded).
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d_%02d", t.Year(), int(t.Month()))
}

// ReconcileMonthly decides how the latest profit percentage relates to the
// recorded history. The decision is driven entirely by the last (most
// recent) point:
//
//   - no history, or the last point is an earlier month: append a point for
//     monthKey
//   - last point is monthKey but the rounded value changed: update in place
//   - last point is monthKey with the same value: no-op
//
// The branches are mutually exclusive and exhaustive. Preconditions (a
// non-empty portfolio with a defined profit percentage) are the caller's
// responsibility. The returned point carries the value rounded to two
// decimals.
func ReconcileMonthly(monthKey string, profitPct float64, history []models.PerformancePoint) (Action, models.PerformancePoint) {
	point := models.PerformancePoint{MonthKey: monthKey, Value: round2(profitPct)}

	if len(history) == 0 {
		return ActionAppend, point
	}
	last := history[len(history)-1]
	if last.MonthKey != monthKey {
		return ActionAppend, point
	}
	if last.Value != point.Value {
		return ActionUpdate, point
	}
	return ActionNone, point
}
