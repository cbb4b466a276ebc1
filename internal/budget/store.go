// Package budget reads and writes the editable budget column of the DRE.
// Budgets are kept per (unit, account, month) by a Store; an Adapter caches
// the budgets of the unit and month currently on screen.
package budget

import (
	"context"
	"errors"
	"time"

	"github.com/cleared-dev/dre/internal/model"
)

// ErrAllUnits is returned when a budget edit targets the all-units view.
var ErrAllUnits = errors.New("budgets can only be edited for a single unit")

// Store persists budgets. Upsert replaces the amount stored under the
// budget's (Unit, Account, Period) key.
type Store interface {
	List(ctx context.Context, unit string, period time.Time) ([]model.Budget, error)
	Upsert(ctx context.Context, b model.Budget) error
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) { f(msg) }

// IsAllUnits reports whether unit selects the aggregate view.
func IsAllUnits(unit string) bool {
	return unit == "" || unit == model.AllUnits
}
