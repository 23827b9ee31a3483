package engine

import (
	"github.com/avikara/costflow/pkg/costgraph"
	"github.com/avikara/costflow/pkg/distribute"
	"github.com/avikara/costflow/pkg/rowset"
)

// Summary aggregates an output record set into run-level totals.
type Summary struct {
	Records        int
	AllocatedTotal float64
	VariableTotal  float64
	TotalCost      float64
	ByCategory     map[string]float64
	CategoryShare  map[string]float64
}

// Summarize computes per-category totals and overall cost for a set of
// output records. Category shares are fractions of the allocated total
// and are left zero when nothing was allocated.
func Summarize(records []rowset.Row) Summary {
	s := Summary{
		Records:       len(records),
		ByCategory:    make(map[string]float64),
		CategoryShare: make(map[string]float64),
	}

	for _, rec := range records {
		for _, cat := range costgraph.LedgerCategories() {
			v := rec.Float(string(cat))
			s.ByCategory[string(cat)] += v
			s.AllocatedTotal += v
		}
		for _, col := range distribute.VariableCostColumns {
			s.VariableTotal += rec.Float(col)
		}
	}

	s.TotalCost = s.AllocatedTotal + s.VariableTotal
	if s.AllocatedTotal != 0 {
		for cat, v := range s.ByCategory {
			s.CategoryShare[cat] = v / s.AllocatedTotal
		}
	}
	return s
}
