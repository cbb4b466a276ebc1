package model

import "fmt"

// FormulaKind tells the resolver how a node gets its value.
type FormulaKind int

const (
	// FormulaNone marks a leaf: the value comes from a direct record lookup.
	FormulaNone FormulaKind = iota
	// FormulaSum adds up the node's children.
	FormulaSum
	FormulaNetRevenue
	FormulaGrossProfit
	FormulaEBITDA
	FormulaNetProfit
)

// Node IDs referenced by the composite formulas.
const (
	IDGrossRevenue         = "receita-bruta"
	IDDeductions           = "deducoes"
	IDNetRevenue           = "receita-liquida"
	IDCostOfGoods          = "cmv"
	IDGrossProfit          = "lucro-bruto"
	IDOperatingExpenses    = "despesas-operacionais"
	IDEBITDA               = "ebitda"
	IDNonOperatingExpenses = "despesas-nao-operacionais"
	IDNetProfit            = "lucro-liquido"
)

// Account names whose leaves read the revenue and cost-of-goods collections
// instead of the ledger.
const (
	AccountGrossRevenue = "Receita Bruta"
	AccountCostOfGoods  = "CMV"
)

const (
	formulaKeySum         = "sum"
	formulaKeyNetRevenue  = "receita-deducoes"
	formulaKeyGrossProfit = "receitaliq-cmv"
	formulaKeyEBITDA      = "lucrobruto-despop"
	formulaKeyNetProfit   = "ebitda-despnaoop"
)

// Operands is the fixed minuend/subtrahend pair of a composite formula.
type Operands struct {
	Minuend    string
	Subtrahend string
}

var composites = map[FormulaKind]Operands{
	FormulaNetRevenue:  {Minuend: IDGrossRevenue, Subtrahend: IDDeductions},
	FormulaGrossProfit: {Minuend: IDNetRevenue, Subtrahend: IDCostOfGoods},
	FormulaEBITDA:      {Minuend: IDGrossProfit, Subtrahend: IDOperatingExpenses},
	FormulaNetProfit:   {Minuend: IDEBITDA, Subtrahend: IDNonOperatingExpenses},
}

// ParseFormula maps a chart formula key to its kind. An empty key is a leaf.
func ParseFormula(s string) (FormulaKind, error) {
	switch s {
	case "":
		return FormulaNone, nil
	case formulaKeySum:
		return FormulaSum, nil
	case formulaKeyNetRevenue:
		return FormulaNetRevenue, nil
	case formulaKeyGrossProfit:
		return FormulaGrossProfit, nil
	case formulaKeyEBITDA:
		return FormulaEBITDA, nil
	case formulaKeyNetProfit:
		return FormulaNetProfit, nil
	}
	return FormulaNone, fmt.Errorf("unknown formula %q", s)
}

// String returns the chart formula key.
func (k FormulaKind) String() string {
	switch k {
	case FormulaSum:
		return formulaKeySum
	case FormulaNetRevenue:
		return formulaKeyNetRevenue
	case FormulaGrossProfit:
		return formulaKeyGrossProfit
	case FormulaEBITDA:
		return formulaKeyEBITDA
	case FormulaNetProfit:
		return formulaKeyNetProfit
	}
	return ""
}

// Composite reports whether the kind is a named subtraction over other nodes.
func (k FormulaKind) Composite() bool {
	_, ok := composites[k]
	return ok
}

// Operands returns the operand references of a composite formula.
func (k FormulaKind) Operands() (Operands, bool) {
	ops, ok := composites[k]
	return ops, ok
}

// AccountNode is one row of the DRE chart of accounts.
type AccountNode struct {
	ID         string // optional; Name doubles as the key when empty
	Name       string
	Level      int    // 1-3, indent hint only
	Parent     string // ID or Name of the parent; empty = root
	Formula    FormulaKind
	Editable   bool
	Expandable bool
}

// Key returns the node's identifier: ID when set, Name otherwise.
func (n AccountNode) Key() string {
	if n.ID != "" {
		return n.ID
	}
	return n.Name
}

// IsLeaf reports whether the node is resolved by direct record lookup.
func (n AccountNode) IsLeaf() bool {
	return n.Formula == FormulaNone
}
