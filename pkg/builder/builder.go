package builder

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/avikara/costflow/pkg/costgraph"
	"github.com/avikara/costflow/pkg/logging"
	"github.com/avikara/costflow/pkg/rowset"
)

// Builder turns tabular registers into the per-run cost-flow graph.
// Every row or group with a broken reference is logged and skipped;
// nothing in the build phase aborts a run.
type Builder struct {
	log logging.Logger
}

// New creates a Builder.
func New(log logging.Logger) *Builder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Builder{log: log.With(logging.Component("builder"))}
}

// BuildCostCenterNodes creates one cost-center node per distinct
// sub-cost-centre identifier. Duplicates collapse to the first
// occurrence.
func (b *Builder) BuildCostCenterNodes(costCenters *rowset.Table) *costgraph.Graph {
	g := costgraph.New()
	for _, row := range costCenters.Rows {
		name := row.String(rowset.ColSubCostCentre)
		if name == "" {
			b.log.Warn("cost center row without identifier, skipping")
			continue
		}
		g.AddCostCenter(name)
	}
	b.log.Info("cost center nodes built", logging.Int("nodes", g.Len()))
	return g
}

// AddServiceEdges builds cost-center to service edges from the service
// register. For each cost center the total workload is the sum of
// service turnaround time over all its rows; each service gets an edge
// weighted by its share of that total. Cost centers with zero total
// workload get no service edges.
func (b *Builder) AddServiceEdges(g *costgraph.Graph, serviceRegister *rowset.Table) {
	for _, group := range serviceRegister.GroupBy(rowset.ColSubCostCentre) {
		ccID, ok := g.Lookup(group.Key)
		if !ok {
			b.log.Warn("service register references unknown cost center, skipping group",
				logging.CostCenter(group.Key), logging.Rows(len(group.Rows)))
			continue
		}

		groupTable := &rowset.Table{Name: serviceRegister.Name, Rows: group.Rows}
		totalTAT := groupTable.Sum(rowset.ColServiceTAT)

		for _, svcGroup := range groupTable.GroupBy(rowset.ColServiceName) {
			svcTable := &rowset.Table{Name: serviceRegister.Name, Rows: svcGroup.Rows}
			svcTAT := svcTable.Sum(rowset.ColServiceTAT)

			svcID := g.AddService(svcGroup.Key, svcTAT)

			if totalTAT > 0 {
				cc := g.MustNode(ccID)
				cc.ChildrenSvc = append(cc.ChildrenSvc, costgraph.Edge{
					Target: svcID,
					Weight: svcTAT / totalTAT,
				})
			}
		}

		if totalTAT <= 0 {
			b.log.Warn("cost center has zero total workload, no service edges",
				logging.CostCenter(group.Key))
		}
	}
}

// BuildDriverEdges computes one normalized edge per row of the driver
// table: weight = row value / column total. Rows whose target cost
// center is absent from the graph are skipped with a diagnostic; their
// share of the total is intentionally lost. A zero total produces no
// edges.
func (b *Builder) BuildDriverEdges(g *costgraph.Graph, rows *rowset.Table, driverCol string) []costgraph.Edge {
	total := rows.Sum(driverCol)
	if total == 0 {
		return nil
	}

	edges := make([]costgraph.Edge, 0, rows.Len())
	for _, row := range rows.Rows {
		name := row.String(rowset.ColSubCostCentre)
		id, ok := g.Lookup(name)
		if !ok {
			b.log.Warn("driver row references unknown cost center, skipping",
				logging.CostCenter(name), logging.Driver(driverCol))
			continue
		}
		edges = append(edges, costgraph.Edge{
			Target: id,
			Weight: row.Float(driverCol) / total,
		})
	}
	return edges
}

// AddCostCenterEdges builds cost-center to cost-center edges. The
// cost-center register declares one driver label per cost center; each
// label resolves through the driver map to a numeric column of the
// secondary-cost-driver table. All cost centers declaring a driver
// share the same normalized child edge list, built from the rows with
// a positive value in that column.
func (b *Builder) AddCostCenterEdges(g *costgraph.Graph, drivers, costCenters *rowset.Table, dm *DriverMap) {
	// driver column -> declaring parent cost centers
	parents := make(map[string][]string)
	for _, group := range costCenters.GroupBy(rowset.ColCostDriver) {
		if group.Key == "" {
			continue
		}
		col, ok := dm.Canonical(group.Key)
		if !ok {
			b.log.Warn("driver label has no canonical mapping, skipping",
				logging.Driver(group.Key), logging.Rows(len(group.Rows)))
			continue
		}
		for _, row := range group.Rows {
			parents[col] = append(parents[col], row.String(rowset.ColSubCostCentre))
		}
	}

	for _, col := range b.driverColumns(drivers, parents) {
		parentNames, ok := parents[col]
		if !ok {
			continue
		}

		positive := drivers.Filter(func(r rowset.Row) bool { return r.Float(col) > 0 })
		edges := b.BuildDriverEdges(g, positive, col)
		if len(edges) == 0 {
			b.log.Warn("driver column produced no edges", logging.Driver(col))
			continue
		}

		for _, parent := range parentNames {
			id, ok := g.Lookup(parent)
			if !ok {
				b.log.Warn("declaring cost center missing from graph",
					logging.CostCenter(parent), logging.Driver(col))
				continue
			}
			node := g.MustNode(id)
			node.ChildrenCC = append(node.ChildrenCC, edges...)
		}
	}

	for _, name := range g.AmbiguousCostCenters() {
		b.log.Warn("cost center has both cost-center and service children; cost-center edges take precedence",
			logging.CostCenter(name), logging.String("flag", "structural_ambiguity"))
	}
}

// driverColumns returns the driver columns to process, following the
// driver table's declared column order when available so edge
// attachment is deterministic.
func (b *Builder) driverColumns(drivers *rowset.Table, parents map[string][]string) []string {
	if drivers != nil && len(drivers.Columns) > 0 {
		cols := make([]string, 0, len(parents))
		for _, c := range drivers.Columns {
			if _, ok := parents[c]; ok {
				cols = append(cols, c)
			}
		}
		return cols
	}
	cols := maps.Keys(parents)
	slices.Sort(cols)
	return cols
}
