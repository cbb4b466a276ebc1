package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllUnits is the aggregate-view unit selector. Budgets are never stored for it.
const AllUnits = "all"

// Budget is the editable comparison value for one leaf account in one month.
type Budget struct {
	Unit      string
	Account   string
	Period    time.Time // first day of the month
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
