// Package metric provides Prometheus-based metrics for ista components:
// core counters for the ontology store and filter engine, plus a registry
// for application-specific metrics.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the core platform metrics shared by the ontology store and
// the filter engine.
type Metrics struct {
	// AxiomsAdded counts axioms accepted into an ontology, by axiom kind.
	AxiomsAdded *prometheus.CounterVec

	// DuplicateAxioms counts idempotent re-adds that were dropped.
	DuplicateAxioms prometheus.Counter

	// EntitiesRegistered tracks the current entity-table size.
	EntitiesRegistered prometheus.Gauge

	// FilterOperations counts filter executions, by extraction strategy.
	FilterOperations *prometheus.CounterVec

	// FilterDuration observes filter execution latency in seconds.
	FilterDuration prometheus.Histogram

	// SerializeOperations counts serializer invocations, by format.
	SerializeOperations *prometheus.CounterVec
}

// NewMetrics creates the core metrics with standard names and help strings.
func NewMetrics() *Metrics {
	return &Metrics{
		AxiomsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ista_axioms_added_total",
			Help: "Axioms accepted into the ontology store, by axiom kind",
		}, []string{"kind"}),
		DuplicateAxioms: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ista_axioms_duplicate_total",
			Help: "Structurally duplicate axioms dropped by idempotent add",
		}),
		EntitiesRegistered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ista_entities_registered",
			Help: "Current number of entities in the entity table",
		}),
		FilterOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ista_filter_operations_total",
			Help: "Filter executions, by extraction strategy",
		}, []string{"strategy"}),
		FilterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ista_filter_duration_seconds",
			Help:    "Filter execution latency",
			Buckets: prometheus.DefBuckets,
		}),
		SerializeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ista_serialize_operations_total",
			Help: "Serializer invocations, by format",
		}, []string{"format"}),
	}
}

// Handler returns an HTTP handler exposing the registry's metrics in
// Prometheus exposition format.
func (r *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{})
}
