package rowset

import (
	"context"
	"fmt"
	"sync"
)

// ErrUnknownDataset is returned when a provider is asked for a dataset
// it does not recognize.
var ErrUnknownDataset = fmt.Errorf("unknown dataset")

// Provider supplies named row collections to the allocation engine.
// Implementations own type coercion and tenant scoping; the engine only
// sees completed tables.
type Provider interface {
	// Fetch returns the table for the named dataset. A missing optional
	// dataset is returned as an empty table, not an error.
	Fetch(ctx context.Context, name string) (*Table, error)
}

// MemProvider is an in-memory Provider backed by a fixed set of tables.
// Used in tests and for fixture-driven runs.
type MemProvider struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewMemProvider creates an empty in-memory provider.
func NewMemProvider() *MemProvider {
	return &MemProvider{tables: make(map[string]*Table)}
}

// Put registers a table under its own name.
func (p *MemProvider) Put(t *Table) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tables[t.Name] = t
}

// Fetch returns the registered table, or an empty table for any known
// dataset that has not been registered.
func (p *MemProvider) Fetch(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if t, ok := p.tables[name]; ok {
		return t, nil
	}
	return NewTable(name), nil
}
