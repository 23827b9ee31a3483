package metrics

import (
	"time"
)

// RecordRun records a completed allocation run with its duration
func (r *Registry) RecordRun(status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
}

// RecordFetch records one dataset fetch
func (r *Registry) RecordFetch(dataset string, rows int, duration time.Duration) {
	r.FetchDuration.WithLabelValues(dataset).Observe(duration.Seconds())
	r.FetchRows.WithLabelValues(dataset).Set(float64(rows))
}

// RecordGraph records the shape of a built graph
func (r *Registry) RecordGraph(costCenters, services, ccEdges, svcEdges int) {
	r.GraphNodes.WithLabelValues("cost_center").Set(float64(costCenters))
	r.GraphNodes.WithLabelValues("service").Set(float64(services))
	r.GraphEdges.WithLabelValues("cost_center").Set(float64(ccEdges))
	r.GraphEdges.WithLabelValues("service").Set(float64(svcEdges))
}

// RecordSkippedRow counts one skipped input row
func (r *Registry) RecordSkippedRow(dataset, reason string) {
	r.RowsSkipped.WithLabelValues(dataset, reason).Inc()
}

// RecordPropagation records the outcome of a propagation pass
func (r *Registry) RecordPropagation(settled, unreached, ambiguous, cycles int) {
	r.NodesSettled.Set(float64(settled))
	r.NodesUnreached.Set(float64(unreached))
	for i := 0; i < ambiguous; i++ {
		r.AmbiguousCostCenters.Inc()
	}
	for i := 0; i < cycles; i++ {
		r.CyclesDetected.Inc()
	}
}

// RecordOutput records the size of the emitted record set
func (r *Registry) RecordOutput(records int) {
	r.RecordsEmitted.Set(float64(records))
}
