package resolver

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/filter"
	"github.com/cleared-dev/dre/internal/period"
)

// KPIs are the headline figures of one period, aggregated straight from the
// records rather than through the tree.
type KPIs struct {
	Revenue            decimal.Decimal
	CostOfGoods        decimal.Decimal
	OperatingExpenses  decimal.Decimal
	EBITDA             decimal.Decimal
	NonOperating       decimal.Decimal
	NetProfit          decimal.Decimal
	NetDebt            decimal.Decimal
	EBITDAMarginPct    decimal.Decimal
	NetProfitMarginPct decimal.Decimal
}

// KPIs computes the headline figures for p. Operating expenses exclude the
// non-operational accounts; those are charged against net profit instead.
func (r *Resolver) KPIs(p period.Kind) KPIs {
	w := r.Window(p)

	var k KPIs
	k.Revenue = filter.SumRevenue(r.records.Revenue, w, r.units)
	k.CostOfGoods = filter.SumCostOfGoods(r.records.CostOfGoods, w, r.units)
	k.OperatingExpenses = filter.SumExpenses(r.records.Ledger, w, r.units, func(account string) bool {
		return filter.IsOperational(account, r.nonOp)
	})
	k.NonOperating = filter.SumExpenses(r.records.Ledger, w, r.units, r.nonOp.Has)
	k.NetDebt = filter.SumExpenses(r.records.Ledger, w, r.units, r.finance.Has)

	k.EBITDA = k.Revenue.Sub(k.CostOfGoods).Sub(k.OperatingExpenses)
	k.NetProfit = k.EBITDA.Sub(k.NonOperating)
	k.EBITDAMarginPct = PctOfRevenue(k.EBITDA, k.Revenue)
	k.NetProfitMarginPct = PctOfRevenue(k.NetProfit, k.Revenue)
	return k
}
