// Package report assembles resolved DRE rows and KPI cards for display and
// export.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/expansion"
	"github.com/cleared-dev/dre/internal/period"
	"github.com/cleared-dev/dre/internal/resolver"
)

// Row is one account line of the DRE.
type Row struct {
	Key        string
	Name       string
	Level      int
	Depth      int
	Expandable bool
	Expanded   bool
	Editable   bool
	Visible    bool

	Current      decimal.Decimal
	Previous     decimal.Decimal
	PctOfRevenue decimal.Decimal
	Variation    decimal.Decimal
	VariationPct decimal.Decimal

	// Budget is set only for editable leaves with a stored budget.
	Budget    decimal.Decimal
	HasBudget bool
}

// Report is the full DRE for one month and unit selection.
type Report struct {
	Month      period.Month
	BudgetUnit string
	Rows       []Row
	Current    resolver.KPIs
	Previous   resolver.KPIs
}

// Options controls how a report is built.
type Options struct {
	// Budgets maps account names to budget amounts for BudgetUnit.
	Budgets    map[string]decimal.Decimal
	BudgetUnit string
}

// Build resolves every node of the resolver's tree in pre-order. Rows hidden
// by exp are kept with Visible false.
func Build(r *resolver.Resolver, exp *expansion.State, opts Options) *Report {
	tree := r.Tree()
	if exp == nil {
		exp = expansion.New()
	}

	rep := &Report{
		Month:      r.Month(),
		BudgetUnit: opts.BudgetUnit,
		Current:    r.KPIs(period.Current),
		Previous:   r.KPIs(period.Previous),
	}
	revenue := rep.Current.Revenue

	for _, i := range tree.Walk() {
		n := tree.Node(i)
		cur := r.ResolveIndex(i, period.Current)
		prev := r.ResolveIndex(i, period.Previous)

		row := Row{
			Key:          n.Key(),
			Name:         n.Name,
			Level:        n.Level,
			Depth:        tree.Depth(i),
			Expandable:   n.Expandable,
			Expanded:     exp.IsExpanded(n.Key()),
			Editable:     n.Editable,
			Visible:      exp.IsVisible(tree, i),
			Current:      cur,
			Previous:     prev,
			PctOfRevenue: resolver.PctOfRevenue(cur, revenue),
			Variation:    resolver.Variation(cur, prev),
			VariationPct: resolver.VariationPct(cur, prev),
		}
		if n.Editable && n.IsLeaf() {
			row.Budget, row.HasBudget = opts.Budgets[n.Name]
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}

// Visible returns the rows the expansion state shows.
func (rep *Report) Visible() []Row {
	var out []Row
	for _, row := range rep.Rows {
		if row.Visible {
			out = append(out, row)
		}
	}
	return out
}

// Row returns the row with the given key.
func (rep *Report) Row(key string) (Row, bool) {
	for _, row := range rep.Rows {
		if row.Key == key {
			return row, true
		}
	}
	return Row{}, false
}
