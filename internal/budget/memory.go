package budget

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cleared-dev/dre/internal/model"
)

type memKey struct {
	unit    string
	account string
	period  string
}

// MemoryStore keeps budgets in a map. Setting Err makes every call fail.
type MemoryStore struct {
	mu      sync.Mutex
	budgets map[memKey]model.Budget
	Err     error
	Lists   int
	Upserts int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{budgets: make(map[memKey]model.Budget)}
}

// List returns the budgets of unit for the month starting at period, sorted
// by account.
func (m *MemoryStore) List(_ context.Context, unit string, period time.Time) ([]model.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Lists++
	if m.Err != nil {
		return nil, m.Err
	}

	p := period.Format(time.DateOnly)
	var out []model.Budget
	for k, b := range m.budgets {
		if k.unit == unit && k.period == p {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out, nil
}

// Upsert stores b under its natural key.
func (m *MemoryStore) Upsert(_ context.Context, b model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Upserts++
	if m.Err != nil {
		return m.Err
	}
	m.budgets[memKey{b.Unit, b.Account, b.Period.Format(time.DateOnly)}] = b
	return nil
}

// Len returns the number of stored budgets.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.budgets)
}
