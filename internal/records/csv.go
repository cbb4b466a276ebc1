package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cleared-dev/dre/internal/filter"
	"github.com/cleared-dev/dre/internal/model"
)

// Headers of the record files.
var (
	RevenueHeader = []string{"date", "amount", "unit"}
	CostHeader    = []string{"date", "amount", "unit"}
	LedgerHeader  = []string{"date", "amount", "account", "unit", "kind"}
	UnitsHeader   = []string{"code", "name", "group"}
)

var dateFormats = []string{time.DateOnly, "02/01/2006", time.RFC3339}

// table is a CSV file read with its header mapping column names to
// positions, so columns may come in any order and extra columns are ignored.
type table struct {
	cols map[string]int
	rows [][]string
}

func readTable(r io.Reader, required []string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &table{}, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return &table{cols: cols, rows: records[1:]}, nil
}

// get returns the named column of row, or "" when the row is short.
func (t *table) get(row []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			y, m, day := d.Date()
			return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q", s)
}

// ReadRevenue reads revenue.csv.
func ReadRevenue(r io.Reader) ([]model.RevenueEntry, error) {
	t, err := readTable(r, RevenueHeader)
	if err != nil {
		return nil, fmt.Errorf("reading revenue CSV: %w", err)
	}

	var out []model.RevenueEntry
	for i, row := range t.rows {
		d, err := parseDate(t.get(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, model.RevenueEntry{
			Date:   d,
			Amount: filter.ParseAmount(t.get(row, "amount")),
			Unit:   t.get(row, "unit"),
		})
	}
	return out, nil
}

// ReadCosts reads cost_of_goods.csv.
func ReadCosts(r io.Reader) ([]model.CostEntry, error) {
	t, err := readTable(r, CostHeader)
	if err != nil {
		return nil, fmt.Errorf("reading cost of goods CSV: %w", err)
	}

	var out []model.CostEntry
	for i, row := range t.rows {
		d, err := parseDate(t.get(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, model.CostEntry{
			Date:   d,
			Amount: filter.ParseAmount(t.get(row, "amount")),
			Unit:   t.get(row, "unit"),
		})
	}
	return out, nil
}

// ReadLedger reads ledger.csv. An empty kind means payable.
func ReadLedger(r io.Reader) ([]model.LedgerEntry, error) {
	t, err := readTable(r, []string{"date", "amount", "account", "unit"})
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	var out []model.LedgerEntry
	for i, row := range t.rows {
		d, err := parseDate(t.get(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		kind := model.LedgerKind(strings.ToLower(t.get(row, "kind")))
		switch kind {
		case "":
			kind = model.LedgerPayable
		case model.LedgerPayable, model.LedgerTransaction:
		default:
			return nil, fmt.Errorf("row %d: unknown ledger kind %q", i+2, kind)
		}

		out = append(out, model.LedgerEntry{
			Date:    d,
			Amount:  filter.ParseAmount(t.get(row, "amount")),
			Account: t.get(row, "account"),
			Unit:    t.get(row, "unit"),
			Kind:    kind,
		})
	}
	return out, nil
}

// ReadUnits reads units.csv.
func ReadUnits(r io.Reader) ([]model.OrgUnit, error) {
	t, err := readTable(r, []string{"code"})
	if err != nil {
		return nil, fmt.Errorf("reading units CSV: %w", err)
	}

	var out []model.OrgUnit
	for _, row := range t.rows {
		out = append(out, model.OrgUnit{
			Code:  t.get(row, "code"),
			Name:  t.get(row, "name"),
			Group: t.get(row, "group"),
		})
	}
	return out, nil
}

// WriteHeader writes a header-only CSV file body.
func WriteHeader(w io.Writer, header []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
