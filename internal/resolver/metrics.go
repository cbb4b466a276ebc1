package resolver

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PctOfRevenue returns value as a percentage of revenue, rounded to two
// places. It is zero when revenue is zero.
func PctOfRevenue(value, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return value.Div(revenue).Mul(hundred).Round(2)
}

// Variation returns current - previous.
func Variation(current, previous decimal.Decimal) decimal.Decimal {
	return current.Sub(previous)
}

// VariationPct returns the period-over-period change relative to the
// magnitude of previous, rounded to two places. It is zero when previous is
// zero.
func VariationPct(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).Round(2)
}
