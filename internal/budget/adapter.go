package budget

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/filter"
	"github.com/cleared-dev/dre/internal/log"
	"github.com/cleared-dev/dre/internal/model"
	"github.com/cleared-dev/dre/internal/period"
)

// Adapter is the session-scoped budget cache of one report view. It holds
// the budgets of a single (unit, month) selection.
type Adapter struct {
	store  Store
	notify Notifier
	log    *log.Logger
	now    func() time.Time

	unit    string
	month   period.Month
	budgets map[string]decimal.Decimal
}

// NewAdapter creates an Adapter with an empty selection.
func NewAdapter(store Store, notify Notifier, logger *log.Logger) *Adapter {
	if notify == nil {
		notify = NotifierFunc(func(string) {})
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Adapter{
		store:   store,
		notify:  notify,
		log:     logger.WithComponent("budget"),
		now:     time.Now,
		unit:    model.AllUnits,
		budgets: map[string]decimal.Decimal{},
	}
}

// Load switches the selection to unit and month and returns its budgets.
// The all-units view has no budgets. When the store fails the error is
// logged and the previous selection and budgets are kept.
func (a *Adapter) Load(ctx context.Context, unit string, month period.Month) map[string]decimal.Decimal {
	if IsAllUnits(unit) {
		a.unit, a.month = model.AllUnits, month
		a.budgets = map[string]decimal.Decimal{}
		return a.Budgets()
	}

	unit = filter.NormalizeUnitCode(unit)
	rows, err := a.store.List(ctx, unit, month.First())
	if err != nil {
		a.log.ErrorContext(ctx, "loading budgets failed", "unit", unit, "month", month.String(), "error", err)
		return a.Budgets()
	}

	budgets := make(map[string]decimal.Decimal, len(rows))
	for _, b := range rows {
		budgets[b.Account] = b.Amount
	}
	a.unit, a.month, a.budgets = unit, month, budgets
	a.log.DebugContext(ctx, "budgets loaded", "unit", unit, "month", month.String(), "count", len(budgets))
	return a.Budgets()
}

// Save stores value as the budget of account for unit and month. Edits in
// the all-units view are refused before reaching the store. A store failure
// is logged and reported to the user, and leaves the cache untouched.
func (a *Adapter) Save(ctx context.Context, unit, account string, month period.Month, value decimal.Decimal) error {
	if IsAllUnits(unit) {
		a.notify.Notify("Select a single unit to edit budgets.")
		return ErrAllUnits
	}

	unit = filter.NormalizeUnitCode(unit)
	b := model.Budget{
		Unit:      unit,
		Account:   account,
		Period:    month.First(),
		Amount:    value,
		UpdatedAt: a.now().UTC(),
	}
	if err := a.store.Upsert(ctx, b); err != nil {
		a.log.ErrorContext(ctx, "saving budget failed", "unit", unit, "account", account, "month", month.String(), "error", err)
		a.notify.Notify(fmt.Sprintf("Could not save the budget for %s. Try again.", account))
		return fmt.Errorf("saving budget for %s: %w", account, err)
	}

	if unit == a.unit && month == a.month {
		a.budgets[account] = value
	}
	a.log.InfoContext(ctx, "budget saved", "unit", unit, "account", account, "month", month.String(), "amount", value.String())
	return nil
}

// Budgets returns a copy of the cached budgets.
func (a *Adapter) Budgets() map[string]decimal.Decimal {
	return maps.Clone(a.budgets)
}

// Budget returns the cached budget of account.
func (a *Adapter) Budget(account string) (decimal.Decimal, bool) {
	v, ok := a.budgets[account]
	return v, ok
}

// Selection returns the unit and month the cache belongs to.
func (a *Adapter) Selection() (string, period.Month) {
	return a.unit, a.month
}
