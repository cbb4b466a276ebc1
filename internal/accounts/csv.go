package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/dre/internal/model"
)

const (
	numFields     = 7
	colID         = 0
	colName       = 1
	colLevel      = 2
	colParent     = 3
	colFormula    = 4
	colEditable   = 5
	colExpandable = 6
)

// Header is the CSV header for chart-of-accounts.csv.
var Header = []string{"id", "name", "level", "parent", "formula", "editable", "expandable"}

// ReadNodes reads chart-of-accounts.csv.
func ReadNodes(r io.Reader) ([]model.AccountNode, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var nodes []model.AccountNode
	for i, rec := range records[1:] {
		n, err := UnmarshalNode(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// WriteNodes writes chart-of-accounts.csv.
func WriteNodes(w io.Writer, nodes []model.AccountNode) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, n := range nodes {
		if err := cw.Write(MarshalNode(n)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalNode converts an AccountNode to a CSV row.
func MarshalNode(n model.AccountNode) []string {
	row := make([]string, numFields)
	row[colID] = n.ID
	row[colName] = n.Name
	row[colLevel] = strconv.Itoa(n.Level)
	row[colParent] = n.Parent
	row[colFormula] = n.Formula.String()
	row[colEditable] = strconv.FormatBool(n.Editable)
	row[colExpandable] = strconv.FormatBool(n.Expandable)
	return row
}

// UnmarshalNode converts a CSV row to an AccountNode.
func UnmarshalNode(record []string) (model.AccountNode, error) {
	if len(record) != numFields {
		return model.AccountNode{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	level, err := strconv.Atoi(record[colLevel])
	if err != nil {
		return model.AccountNode{}, fmt.Errorf("parsing level %q: %w", record[colLevel], err)
	}

	formula, err := model.ParseFormula(record[colFormula])
	if err != nil {
		return model.AccountNode{}, err
	}

	editable, err := parseFlag(record[colEditable])
	if err != nil {
		return model.AccountNode{}, fmt.Errorf("parsing editable %q: %w", record[colEditable], err)
	}

	expandable, err := parseFlag(record[colExpandable])
	if err != nil {
		return model.AccountNode{}, fmt.Errorf("parsing expandable %q: %w", record[colExpandable], err)
	}

	return model.AccountNode{
		ID:         record[colID],
		Name:       record[colName],
		Level:      level,
		Parent:     record[colParent],
		Formula:    formula,
		Editable:   editable,
		Expandable: expandable,
	}, nil
}

// parseFlag reads a boolean column; empty means false.
func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
