package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "costflow_runs_total",
			Help: "Total number of allocation runs",
		},
		[]string{"status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "costflow_run_duration_seconds",
			Help:    "Allocation run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)

	r.FetchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "costflow_fetch_duration_seconds",
			Help:    "Dataset fetch duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"dataset"},
	)

	r.FetchRows = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "costflow_fetch_rows",
			Help: "Rows fetched per dataset in the latest run",
		},
		[]string{"dataset"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "costflow_graph_nodes",
			Help: "Nodes in the cost-flow graph of the latest run",
		},
		[]string{"kind"},
	)

	r.GraphEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "costflow_graph_edges",
			Help: "Edges in the cost-flow graph of the latest run",
		},
		[]string{"kind"},
	)

	r.RowsSkipped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "costflow_rows_skipped_total",
			Help: "Input rows skipped with a diagnostic",
		},
		[]string{"dataset", "reason"},
	)

	r.AmbiguousCostCenters = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "costflow_ambiguous_cost_centers_total",
			Help: "Cost centers found with both cost-center and service children",
		},
	)

	r.NodesSettled = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "costflow_propagation_nodes_settled",
			Help: "Nodes settled by the latest propagation pass",
		},
	)

	r.NodesUnreached = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "costflow_propagation_nodes_unreached",
			Help: "Nodes whose parent set never emptied in the latest run",
		},
	)

	r.CyclesDetected = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "costflow_cycles_detected_total",
			Help: "Directed cycles found in cost-flow graphs",
		},
	)

	r.RecordsEmitted = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "costflow_records_emitted",
			Help: "Output records produced by the latest run",
		},
	)
}
