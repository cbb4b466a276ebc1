package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/dre/internal/model"
)

func TestDefaultChartIsValid(t *testing.T) {
	assert.Empty(t, Validate(DefaultChart()))

	tree, err := Build(DefaultChart())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultChart()), tree.Len())
}

func TestDefaultChart_CompositeOperandsExist(t *testing.T) {
	tree := MustBuild(DefaultChart())
	for _, id := range []string{
		model.IDGrossRevenue, model.IDDeductions, model.IDNetRevenue,
		model.IDCostOfGoods, model.IDGrossProfit, model.IDOperatingExpenses,
		model.IDEBITDA, model.IDNonOperatingExpenses, model.IDNetProfit,
	} {
		_, ok := tree.Lookup(id)
		assert.True(t, ok, "expected node %q", id)
	}
}

func TestDefaultChart_NoEditableSumNodes(t *testing.T) {
	for _, n := range DefaultChart() {
		if n.Formula == model.FormulaSum {
			assert.False(t, n.Editable, "sum node %s must not be editable", n.Key())
		}
	}
}

func TestDefaultChart_FinancialAccountsAreLeaves(t *testing.T) {
	tree := MustBuild(DefaultChart())
	names := append(DefaultNonOperationalAccounts(), DefaultFinancingAccounts()...)
	for _, name := range names {
		i, ok := tree.Lookup(name)
		require.True(t, ok, "account %q missing from chart", name)
		assert.True(t, tree.Node(i).IsLeaf(), "account %q should be a leaf", name)
	}
}

func TestBuild_NameLinkedParents(t *testing.T) {
	tree := MustBuild(DefaultChart())

	// "Simples Nacional" names its parent by display name rather than ID.
	leaf, ok := tree.Lookup("Simples Nacional")
	require.True(t, ok)
	parent, ok := tree.Parent(leaf)
	require.True(t, ok)
	assert.Equal(t, "impostos-vendas", tree.Node(parent).Key())

	var childKeys []string
	for _, c := range tree.Children(parent) {
		childKeys = append(childKeys, tree.Node(c).Key())
	}
	assert.Equal(t, []string{"ICMS", "PIS", "COFINS", "ISS", "Simples Nacional"}, childKeys)
}

func TestWalk_PreOrder(t *testing.T) {
	nodes := []model.AccountNode{
		{ID: "r", Name: "Root", Level: 1, Formula: model.FormulaSum},
		{ID: "other", Name: "Other Root", Level: 1},
		{ID: "g", Name: "Group", Level: 2, Parent: "r", Formula: model.FormulaSum},
		{Name: "Leaf A", Level: 3, Parent: "g"},
		{Name: "Leaf B", Level: 2, Parent: "Root"},
	}
	tree := MustBuild(nodes)

	var keys []string
	for _, i := range tree.Walk() {
		keys = append(keys, tree.Node(i).Key())
	}
	assert.Equal(t, []string{"r", "g", "Leaf A", "Leaf B", "other"}, keys)

	var roots []string
	for _, i := range tree.Roots() {
		roots = append(roots, tree.Node(i).Key())
	}
	assert.Equal(t, []string{"r", "other"}, roots)

	var leaves []string
	for _, i := range tree.Leaves() {
		leaves = append(leaves, tree.Node(i).Key())
	}
	assert.Equal(t, []string{"Leaf A", "Leaf B", "other"}, leaves)

	leafA, _ := tree.Lookup("Leaf A")
	assert.Equal(t, 2, tree.Depth(leafA))
}

func TestBuild_TrimsWhitespace(t *testing.T) {
	tree := MustBuild([]model.AccountNode{
		{ID: " r ", Name: "Root", Level: 1, Formula: model.FormulaSum},
		{Name: " Leaf ", Level: 2, Parent: " r"},
	})
	i, ok := tree.Lookup("Leaf")
	require.True(t, ok)
	p, ok := tree.Parent(i)
	require.True(t, ok)
	assert.Equal(t, "r", tree.Node(p).Key())
}

func invariants(errs []ValidationError) []int {
	var out []int
	for _, e := range errs {
		out = append(out, e.Invariant)
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		nodes []model.AccountNode
		want  int
	}{
		{
			name:  "missing id and name",
			nodes: []model.AccountNode{{Level: 1}},
			want:  1,
		},
		{
			name: "duplicate key",
			nodes: []model.AccountNode{
				{ID: "a", Name: "A", Level: 1, Formula: model.FormulaSum},
				{ID: "a", Name: "B", Level: 1, Formula: model.FormulaSum},
			},
			want: 2,
		},
		{
			name:  "level out of range",
			nodes: []model.AccountNode{{Name: "A", Level: 4}},
			want:  3,
		},
		{
			name:  "unknown parent",
			nodes: []model.AccountNode{{Name: "A", Level: 2, Parent: "nowhere"}},
			want:  4,
		},
		{
			name:  "self parent",
			nodes: []model.AccountNode{{ID: "a", Name: "A", Level: 1, Parent: "a"}},
			want:  4,
		},
		{
			name: "ambiguous parent name",
			nodes: []model.AccountNode{
				{ID: "x", Name: "Group", Level: 1, Formula: model.FormulaSum},
				{ID: "y", Name: "Group", Level: 1, Formula: model.FormulaSum},
				{Name: "Leaf", Level: 2, Parent: "Group"},
			},
			want: 4,
		},
		{
			name:  "unknown composite operand",
			nodes: []model.AccountNode{{ID: model.IDEBITDA, Name: "EBITDA", Level: 1, Formula: model.FormulaEBITDA}},
			want:  5,
		},
		{
			name: "duplicate leaf name",
			nodes: []model.AccountNode{
				{ID: "a", Name: "Group A", Level: 1, Formula: model.FormulaSum},
				{ID: "b", Name: "Group B", Level: 1, Formula: model.FormulaSum},
				{ID: "a-juros", Name: "Juros", Level: 2, Parent: "a"},
				{ID: "b-juros", Name: "Juros", Level: 2, Parent: "b"},
			},
			want: 6,
		},
		{
			name: "parent cycle",
			nodes: []model.AccountNode{
				{ID: "a", Name: "A", Level: 1, Parent: "b", Formula: model.FormulaSum},
				{ID: "b", Name: "B", Level: 1, Parent: "a", Formula: model.FormulaSum},
			},
			want: 7,
		},
		{
			name: "formula cycle",
			nodes: []model.AccountNode{
				{ID: model.IDGrossRevenue, Name: "Receita Bruta", Level: 1},
				{ID: model.IDDeductions, Name: "Deduções", Level: 1, Formula: model.FormulaSum},
				{ID: model.IDNetRevenue, Name: "Receita Líquida", Level: 2, Parent: model.IDDeductions, Formula: model.FormulaNetRevenue},
			},
			want: 7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.nodes)
			require.NotEmpty(t, errs)
			assert.Contains(t, invariants(errs), tt.want)
		})
	}
}

func TestBuild_ReportsAllViolations(t *testing.T) {
	_, err := Build([]model.AccountNode{
		{Level: 1},
		{Name: "A", Level: 9},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invariant 1")
	assert.Contains(t, err.Error(), "invariant 3")
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild([]model.AccountNode{{Level: 1}})
	})
}
