package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the allocation engine
type Registry struct {
	// Run Metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram

	// Fetch Metrics
	FetchDuration *prometheus.HistogramVec
	FetchRows     *prometheus.GaugeVec

	// Graph Metrics
	GraphNodes           *prometheus.GaugeVec
	GraphEdges           *prometheus.GaugeVec
	RowsSkipped          *prometheus.CounterVec
	AmbiguousCostCenters prometheus.Counter

	// Propagation Metrics
	NodesSettled   prometheus.Gauge
	NodesUnreached prometheus.Gauge
	CyclesDetected prometheus.Counter

	// Output Metrics
	RecordsEmitted prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initRunMetrics()
	r.initGraphMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
