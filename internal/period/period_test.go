package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Month
	}{
		{"2025-03", Month{2025, time.March}},
		{"2025-12", Month{2025, time.December}},
		{" 2024-01 ", Month{2024, time.January}},
		{"2025-03-01", Month{2025, time.March}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "2025", "2025-13", "2025-00", "abcd-01", "2025-xx"} {
		_, err := Parse(in)
		assert.Error(t, err, "Parse(%q)", in)
	}
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2025-03", New(2025, time.March).String())
	assert.Equal(t, "0999-01", New(999, time.January).String())
}

func TestWindow(t *testing.T) {
	m := New(2025, time.March)

	cur := m.For(Current)
	assert.Equal(t, date(2025, 3, 1), cur.Start)
	assert.Equal(t, date(2025, 3, 31), cur.End)

	prev := m.For(Previous)
	assert.Equal(t, date(2025, 2, 1), prev.Start)
	assert.Equal(t, date(2025, 2, 28), prev.End)
}

func TestWindow_YearBoundary(t *testing.T) {
	prev := New(2025, time.January).Window(-1)
	assert.Equal(t, date(2024, 12, 1), prev.Start)
	assert.Equal(t, date(2024, 12, 31), prev.End)

	leap := New(2024, time.March).Window(-1)
	assert.Equal(t, date(2024, 2, 29), leap.End)
}

func TestWindowContains(t *testing.T) {
	w := New(2025, time.March).For(Current)

	assert.True(t, w.Contains(date(2025, 3, 1)), "start is inclusive")
	assert.True(t, w.Contains(date(2025, 3, 31)), "end is inclusive")
	assert.True(t, w.Contains(time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)), "time of day ignored")
	assert.False(t, w.Contains(date(2025, 2, 28)))
	assert.False(t, w.Contains(date(2025, 4, 1)))
}

func TestWindowUnion(t *testing.T) {
	m := New(2025, time.March)
	u := m.For(Current).Union(m.For(Previous))
	assert.Equal(t, date(2025, 2, 1), u.Start)
	assert.Equal(t, date(2025, 3, 31), u.End)
}

func TestKindOffset(t *testing.T) {
	assert.Equal(t, 0, Current.Offset())
	assert.Equal(t, -1, Previous.Offset())
	assert.Equal(t, "previous", Previous.String())
}
