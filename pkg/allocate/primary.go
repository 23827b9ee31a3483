package allocate

import (
	"github.com/avikara/costflow/pkg/costgraph"
	"github.com/avikara/costflow/pkg/logging"
	"github.com/avikara/costflow/pkg/rowset"
)

// Inputs carries the ledgers consumed by primary attribution. Any table
// may be nil or empty; the corresponding pass then contributes nothing.
type Inputs struct {
	Consumption   *rowset.Table
	ExpenseWise   *rowset.Table
	HR            *rowset.Table
	TrialBalance  *rowset.Table
	ConnectedLoad *rowset.Table
}

// Attributor seeds cost-center nodes with directly observed amounts
// from the four source ledgers. The passes are independent and
// order-insensitive; attribution always writes into a freshly built
// graph, so repeating a build+attribute sequence can never double-count.
type Attributor struct {
	log logging.Logger
}

// NewAttributor creates an Attributor.
func NewAttributor(log logging.Logger) *Attributor {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Attributor{log: log.With(logging.Component("allocate"))}
}

// Attribute runs all four primary-cost passes.
func (a *Attributor) Attribute(g *costgraph.Graph, in Inputs) {
	a.attributeLedger(g, in.Consumption, rowset.ColTransactionValue, costgraph.Materials)
	a.attributeLedger(g, in.ExpenseWise, rowset.ColAmount, costgraph.Expense)
	a.attributeLedger(g, in.HR, rowset.ColNetSalary, costgraph.Labor)
	a.attributeUtilities(g, in.TrialBalance, in.ConnectedLoad)
}

// attributeLedger sums one monetary column per cost center and writes
// the total under the given category. Rows referencing unknown cost
// centers are skipped with a diagnostic.
func (a *Attributor) attributeLedger(g *costgraph.Graph, ledger *rowset.Table, col string, cat costgraph.Category) {
	if ledger.Empty() {
		return
	}
	for _, group := range ledger.GroupBy(rowset.ColSubCostCentre) {
		id, ok := g.Lookup(group.Key)
		if !ok {
			a.log.Warn("ledger row references unknown cost center, skipping",
				logging.CostCenter(group.Key), logging.Dataset(ledger.Name))
			continue
		}
		groupTable := &rowset.Table{Name: ledger.Name, Rows: group.Rows}
		g.MustNode(id).Cost.Add(cat, groupTable.Sum(col))
	}
}

// attributeUtilities apportions the facility's metered power expenditure
// across cost centers by their share of total connected load. With zero
// total load no utility cost is attributed.
func (a *Attributor) attributeUtilities(g *costgraph.Graph, trialBalance, connectedLoad *rowset.Table) {
	if trialBalance.Empty() || connectedLoad.Empty() {
		return
	}

	power := trialBalance.
		Filter(func(r rowset.Row) bool { return r.String(rowset.ColPrimaryCostDriver) == rowset.PowerMarker }).
		Sum(rowset.ColAmount)

	totalLoad := connectedLoad.Sum(rowset.ColTotalLoadKg)
	if totalLoad == 0 {
		a.log.Warn("total connected load is zero, no utility cost attributed")
		return
	}

	for _, group := range connectedLoad.GroupBy(rowset.ColSubCostCentre) {
		id, ok := g.Lookup(group.Key)
		if !ok {
			a.log.Warn("connected load row references unknown cost center, skipping",
				logging.CostCenter(group.Key))
			continue
		}
		groupTable := &rowset.Table{Name: connectedLoad.Name, Rows: group.Rows}
		share := groupTable.Sum(rowset.ColTotalLoadKg) / totalLoad
		g.MustNode(id).Cost.Add(costgraph.Utilities, share*power)
	}
}
