package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avikara/costflow/pkg/allocate"
	"github.com/avikara/costflow/pkg/builder"
	"github.com/avikara/costflow/pkg/distribute"
	"github.com/avikara/costflow/pkg/logging"
	"github.com/avikara/costflow/pkg/metrics"
	"github.com/avikara/costflow/pkg/rowset"
)

// Engine runs the full allocation pipeline: fetch, build, attribute,
// propagate, distribute. One Engine may run many times; every run
// builds a fresh graph and exposes nothing but its result.
type Engine struct {
	provider  rowset.Provider
	log       logging.Logger
	metrics   *metrics.Registry
	driverMap *builder.DriverMap
}

// Result is the outcome of one allocation run.
type Result struct {
	RunID       string
	Records     []rowset.Row
	Propagation *allocate.PropagationResult
	Cycles      []allocate.Cycle
	Summary     Summary
}

// New creates an Engine. A nil logger, metrics registry or driver map
// falls back to the no-op logger, the default registry and the built-in
// driver map.
func New(provider rowset.Provider, log logging.Logger, reg *metrics.Registry, dm *builder.DriverMap) *Engine {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	if dm == nil {
		dm = builder.DefaultDriverMap()
	}
	return &Engine{
		provider:  provider,
		log:       log.With(logging.Component("engine")),
		metrics:   reg,
		driverMap: dm,
	}
}

// Run executes one allocation run. Only a failed fetch of a required
// dataset (or cancellation) fails the run; every row-level problem is
// logged and skipped. A failed run returns no partial records.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	log := e.log.With(logging.RunID(runID))
	start := time.Now()

	log.Info("allocation run starting")

	tables, err := e.fetchAll(ctx, log)
	if err != nil {
		e.metrics.RecordRun("failure", time.Since(start))
		return nil, fmt.Errorf("fetching input datasets: %w", err)
	}

	b := builder.New(log)
	g := b.BuildCostCenterNodes(tables[rowset.DatasetCostCenter])
	b.AddServiceEdges(g, tables[rowset.DatasetServiceRegister])
	b.AddCostCenterEdges(g, tables[rowset.DatasetSecondaryCostDriver], tables[rowset.DatasetCostCenter], e.driverMap)

	stats := g.GetStatistics()
	e.metrics.RecordGraph(stats.CostCenters, stats.Services, stats.CCEdges, stats.ServiceEdges)

	allocate.NewAttributor(log).Attribute(g, allocate.Inputs{
		Consumption:   tables[rowset.DatasetConsumption],
		ExpenseWise:   tables[rowset.DatasetExpenseWise],
		HR:            tables[rowset.DatasetHR],
		TrialBalance:  tables[rowset.DatasetTrialBalance],
		ConnectedLoad: tables[rowset.DatasetConnectedLoad],
	})

	propagation := allocate.NewPropagator(log).Run(g)

	var cycles []allocate.Cycle
	if len(propagation.Unreached) > 0 {
		cycles = allocate.DetectCycles(g)
		for _, c := range cycles {
			log.Warn("cost-flow cycle detected", logging.Any("cycle", c))
		}
	}
	e.metrics.RecordPropagation(propagation.Processed, len(propagation.Unreached),
		len(propagation.Ambiguous), len(cycles))

	d := distribute.New(log)
	rows := d.Distribute(g, tables[rowset.DatasetServiceRegister])
	rows = d.JoinVariableCosts(rows, tables[rowset.DatasetVariableCostBill])
	records := d.Project(rows)

	summary := Summarize(records)
	e.metrics.RecordOutput(len(records))
	e.metrics.RecordRun("success", time.Since(start))

	log.Info("allocation run complete",
		logging.Int("records", len(records)),
		logging.Float64("allocated_total", summary.AllocatedTotal),
		logging.Latency(time.Since(start)))

	return &Result{
		RunID:       runID,
		Records:     records,
		Propagation: propagation,
		Cycles:      cycles,
		Summary:     summary,
	}, nil
}

// fetchAll fetches every dataset concurrently. The fetches have no
// interdependency; the pipeline consumes them as a completed set. A
// required dataset failing fails the whole fetch; an optional dataset
// failing degrades to an empty table with a diagnostic.
func (e *Engine) fetchAll(ctx context.Context, log logging.Logger) (map[string]*rowset.Table, error) {
	names := rowset.AllDatasets()
	tables := make(map[string]*rowset.Table, len(names))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		fatalErr error
	)

	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			fetchStart := time.Now()
			table, err := e.provider.Fetch(ctx, name)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if rowset.Required(name) || ctx.Err() != nil {
					if fatalErr == nil {
						fatalErr = fmt.Errorf("dataset %s: %w", name, err)
					}
					return
				}
				log.Warn("optional dataset unavailable, using empty table",
					logging.Dataset(name), logging.Error(err))
				tables[name] = rowset.NewTable(name)
				return
			}

			e.metrics.RecordFetch(name, table.Len(), time.Since(fetchStart))
			tables[name] = table
		}(name)
	}

	wg.Wait()

	if fatalErr != nil {
		return nil, fatalErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}
