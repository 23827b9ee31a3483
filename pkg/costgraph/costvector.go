package costgraph

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Category identifies one cost bucket on a node. The four ledger-backed
// categories are fixed; propagation carries any category it finds, so
// downstream nodes may hold categories their direct parents never
// introduced.
type Category string

const (
	Materials Category = "materials"
	Expense   Category = "expense"
	Labor     Category = "labor"
	Utilities Category = "utilities"
)

// LedgerCategories returns the four primary-cost categories in a stable order.
func LedgerCategories() []Category {
	return []Category{Materials, Expense, Labor, Utilities}
}

// CostVector accumulates monetary amounts per category. Within one run
// entries only ever grow; nothing decrements or overwrites a figure.
type CostVector map[Category]float64

// Add accumulates amount under category, creating the entry at zero if absent.
func (cv CostVector) Add(c Category, amount float64) {
	cv[c] += amount
}

// AddScaled accumulates weight * other[c] for every category present in other.
func (cv CostVector) AddScaled(weight float64, other CostVector) {
	for c, amount := range other {
		cv[c] += weight * amount
	}
}

// Get returns the amount for category, zero when absent.
func (cv CostVector) Get(c Category) float64 {
	return cv[c]
}

// Total returns the sum over all categories.
func (cv CostVector) Total() float64 {
	var total float64
	for _, amount := range cv {
		total += amount
	}
	return total
}

// Categories returns the present categories sorted for deterministic output.
func (cv CostVector) Categories() []Category {
	keys := maps.Keys(cv)
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy.
func (cv CostVector) Clone() CostVector {
	return maps.Clone(cv)
}
