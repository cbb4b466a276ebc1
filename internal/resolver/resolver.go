// Package resolver evaluates the chart of accounts against a set of records.
package resolver

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/accounts"
	"github.com/cleared-dev/dre/internal/filter"
	"github.com/cleared-dev/dre/internal/model"
	"github.com/cleared-dev/dre/internal/period"
)

// Inputs is everything a resolver reads. None of it is modified.
type Inputs struct {
	Records        model.Records
	Catalog        []model.OrgUnit
	Filter         model.UnitFilter
	NonOperational []string
	Financing      []string
}

// Resolver computes node values for the current and previous windows of a
// selected month. Values are memoized per node and period; a Resolver is
// meant for a single goroutine.
type Resolver struct {
	tree    *accounts.Tree
	records model.Records
	units   filter.UnitSet
	nonOp   filter.AccountSet
	finance filter.AccountSet
	anchor  period.Month
	memo    [2]map[int]decimal.Decimal
}

// New returns a Resolver for tree over in, anchored at month.
func New(tree *accounts.Tree, in Inputs, month period.Month) *Resolver {
	return &Resolver{
		tree:    tree,
		records: in.Records,
		units:   filter.NewUnitSet(in.Catalog, in.Filter),
		nonOp:   filter.NewAccountSet(in.NonOperational...),
		finance: filter.NewAccountSet(in.Financing...),
		anchor:  month,
		memo: [2]map[int]decimal.Decimal{
			make(map[int]decimal.Decimal),
			make(map[int]decimal.Decimal),
		},
	}
}

// Tree returns the chart the resolver evaluates.
func (r *Resolver) Tree() *accounts.Tree { return r.tree }

// Month returns the selected month.
func (r *Resolver) Month() period.Month { return r.anchor }

// Window returns the date window of p.
func (r *Resolver) Window(p period.Kind) period.Window { return r.anchor.For(p) }

// Resolve returns the value of the node with the given key. Unknown keys
// resolve to zero.
func (r *Resolver) Resolve(key string, p period.Kind) decimal.Decimal {
	i, ok := r.tree.Lookup(key)
	if !ok {
		return decimal.Zero
	}
	return r.ResolveIndex(i, p)
}

// ResolveIndex returns the value of the node at position i.
func (r *Resolver) ResolveIndex(i int, p period.Kind) decimal.Decimal {
	memo := r.memo[p]
	if v, ok := memo[i]; ok {
		return v
	}
	v := r.evaluate(i, p)
	memo[i] = v
	return v
}

func (r *Resolver) evaluate(i int, p period.Kind) decimal.Decimal {
	n := r.tree.Node(i)

	// A sum formula wins over Editable: sum nodes never read records.
	if n.Formula == model.FormulaSum {
		total := decimal.Zero
		for _, c := range r.tree.Children(i) {
			total = total.Add(r.ResolveIndex(c, p))
		}
		return total
	}

	if ops, ok := n.Formula.Operands(); ok {
		return r.Resolve(ops.Minuend, p).Sub(r.Resolve(ops.Subtrahend, p))
	}

	return r.lookup(n.Name, p)
}

// lookup reads a leaf's value straight from the records.
func (r *Resolver) lookup(account string, p period.Kind) decimal.Decimal {
	w := r.Window(p)
	switch account {
	case model.AccountGrossRevenue:
		return filter.SumRevenue(r.records.Revenue, w, r.units)
	case model.AccountCostOfGoods:
		return filter.SumCostOfGoods(r.records.CostOfGoods, w, r.units)
	}
	return filter.SumAccount(r.records.Ledger, account, w, r.units)
}
