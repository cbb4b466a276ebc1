// Package filter selects records by reporting window, account and
// organizational unit. Every function here is pure and total.
package filter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/model"
	"github.com/cleared-dev/dre/internal/period"
)

// Matches reports whether a record dated date for unit falls inside w and
// belongs to the selected units.
func Matches(date time.Time, unit string, w period.Window, units UnitSet) bool {
	return w.Contains(date) && units.Contains(unit)
}

// SumRevenue adds the amounts of the matching revenue entries.
func SumRevenue(entries []model.RevenueEntry, w period.Window, units UnitSet) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if Matches(e.Date, e.Unit, w, units) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SumCostOfGoods adds the amounts of the matching cost-of-goods entries.
func SumCostOfGoods(entries []model.CostEntry, w period.Window, units UnitSet) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if Matches(e.Date, e.Unit, w, units) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// ExpenseAmount returns how much a ledger entry contributes to an expense
// aggregate. Payables count when non-negative; transactions count only when
// negative, as their absolute value.
func ExpenseAmount(e model.LedgerEntry) (decimal.Decimal, bool) {
	switch e.Kind {
	case model.LedgerTransaction:
		if e.Amount.IsNegative() {
			return e.Amount.Abs(), true
		}
	default:
		if !e.Amount.IsNegative() {
			return e.Amount, true
		}
	}
	return decimal.Zero, false
}

// SumAccount adds the expense amounts of the matching ledger entries booked
// under account.
func SumAccount(entries []model.LedgerEntry, account string, w period.Window, units UnitSet) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Account != account || !Matches(e.Date, e.Unit, w, units) {
			continue
		}
		if amt, ok := ExpenseAmount(e); ok {
			total = total.Add(amt)
		}
	}
	return total
}

// SumExpenses adds the expense amounts of the matching ledger entries whose
// account satisfies keep.
func SumExpenses(entries []model.LedgerEntry, w period.Window, units UnitSet, keep func(account string) bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if !keep(e.Account) || !Matches(e.Date, e.Unit, w, units) {
			continue
		}
		if amt, ok := ExpenseAmount(e); ok {
			total = total.Add(amt)
		}
	}
	return total
}

// AccountSet is a set of account names.
type AccountSet map[string]struct{}

// NewAccountSet builds a set from names, ignoring surrounding whitespace.
func NewAccountSet(names ...string) AccountSet {
	s := make(AccountSet, len(names))
	for _, n := range names {
		s[strings.TrimSpace(n)] = struct{}{}
	}
	return s
}

// Has reports whether account is in the set.
func (s AccountSet) Has(account string) bool {
	_, ok := s[account]
	return ok
}

// IsOperational reports whether account is outside the non-operational set.
func IsOperational(account string, nonOperational AccountSet) bool {
	return !nonOperational.Has(account)
}

// ParseAmount parses a currency amount. Malformed or empty input is zero.
// Both "1234.56" and "1.234,56" are accepted; a leading "R$" is dropped.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero
	}

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot >= 0 && comma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
