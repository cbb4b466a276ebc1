package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueEntry is one row of the revenue collection.
type RevenueEntry struct {
	Date   time.Time
	Amount decimal.Decimal
	Unit   string
}

// CostEntry is one row of the cost-of-goods collection.
type CostEntry struct {
	Date   time.Time
	Amount decimal.Decimal
	Unit   string
}

// LedgerKind separates payables from free-form bank transactions.
type LedgerKind string

const (
	LedgerPayable     LedgerKind = "payable"
	LedgerTransaction LedgerKind = "transaction"
)

// LedgerEntry is a generic ledger row keyed by account name.
type LedgerEntry struct {
	Date    time.Time
	Amount  decimal.Decimal // signed
	Account string
	Unit    string
	Kind    LedgerKind
}

// Records bundles the three collections the DRE is computed from.
type Records struct {
	Revenue     []RevenueEntry
	CostOfGoods []CostEntry
	Ledger      []LedgerEntry
}
