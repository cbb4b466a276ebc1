// Package auditlog keeps an append-only CSV trail of budget edits.
package auditlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/dre/internal/period"
)

// Outcome records whether an edit reached the store.
type Outcome string

const (
	OutcomeSaved    Outcome = "saved"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// Entry is one row in the budget log.
type Entry struct {
	Timestamp time.Time
	Unit      string
	Account   string
	Period    period.Month
	Amount    decimal.Decimal
	Outcome   Outcome
	Detail    string
}

// Header is the CSV header for budget-log.csv.
const Header = "timestamp,unit,account,period,amount,outcome,detail"

// File is the log path relative to the project root.
const File = "logs/budget-log.csv"

const (
	numFields  = 7
	colTime    = 0
	colUnit    = 1
	colAccount = 2
	colPeriod  = 3
	colAmount  = 4
	colOutcome = 5
	colDetail  = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colUnit] = e.Unit
	row[colAccount] = e.Account
	row[colPeriod] = e.Period.String()
	row[colAmount] = e.Amount.String()
	row[colOutcome] = string(e.Outcome)
	row[colDetail] = e.Detail
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}
	month, err := period.Parse(record[colPeriod])
	if err != nil {
		return Entry{}, err
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Entry{
		Timestamp: ts,
		Unit:      record[colUnit],
		Account:   record[colAccount],
		Period:    month,
		Amount:    amount,
		Outcome:   Outcome(record[colOutcome]),
		Detail:    record[colDetail],
	}, nil
}

// Append writes entries to <root>/logs/budget-log.csv, creating the file and
// header if needed.
func Append(root string, entries ...Entry) error {
	path := filepath.Join(root, File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	_, statErr := os.Stat(path)
	needsHeader := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening budget log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/budget-log.csv, or nil when the
// log does not exist yet.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, File))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening budget log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budget log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
