// Package period derives reporting windows from a selected month.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind selects which window of a report a value belongs to.
type Kind int

const (
	Current Kind = iota
	Previous
)

// Offset returns the month offset from the selected anchor.
func (k Kind) Offset() int {
	if k == Previous {
		return -1
	}
	return 0
}

func (k Kind) String() string {
	if k == Previous {
		return "previous"
	}
	return "current"
}

// Month is a calendar month anchor.
type Month struct {
	Year  int
	Month time.Month
}

// New returns the anchor for year/month, normalizing out-of-range months.
func New(year int, month time.Month) Month {
	return FromTime(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the month containing t.
func FromTime(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add returns the month n months away.
func (m Month) Add(n int) Month {
	return FromTime(m.First().AddDate(0, n, 0))
}

// First returns the first day of the month (UTC midnight).
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month (UTC midnight).
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Window returns the inclusive window of the month offset months away.
func (m Month) Window(offset int) Window {
	target := m.Add(offset)
	return Window{Start: target.First(), End: target.Last()}
}

// For returns the window of the given kind relative to m.
func (m Month) For(k Kind) Window {
	return m.Window(k.Offset())
}

// String returns the month key, like "2025-03".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Parse parses a month key like "2025-03". A full date ("2025-03-01") is
// accepted and truncated to its month.
func Parse(s string) (Month, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "-", 3)
	if len(parts) < 2 {
		return Month{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, fmt.Errorf("invalid year in month %q: %w", s, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month %d out of range in %q", month, s)
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// Window is an inclusive [Start, End] range of calendar dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t's calendar date falls inside the window.
// Time of day and location are ignored.
func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(w.Start)) && !d.After(Day(w.End))
}

// Union returns the smallest window covering both w and o.
func (w Window) Union(o Window) Window {
	out := w
	if o.Start.Before(out.Start) {
		out.Start = o.Start
	}
	if o.End.After(out.End) {
		out.End = o.End
	}
	return out
}

func (w Window) String() string {
	return w.Start.Format(time.DateOnly) + ".." + w.End.Format(time.DateOnly)
}

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
