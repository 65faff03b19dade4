// Package metrics exposes prometheus instrumentation for the rate engine:
// quote throughput, coverage skips, batch outcomes and aggregation latency.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EngineMetrics bundles the engine's prometheus collectors. Construct once at
// composition time and share across services; all collectors are safe for
// concurrent use.
type EngineMetrics struct {
	QuotesComputed      prometheus.Counter
	CoverageSkips       prometheus.Counter
	BatchShipments      *prometheus.CounterVec
	AggregationDuration prometheus.Histogram
}

// NewEngineMetrics creates and registers the engine collectors on the given
// registerer.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	factory := promauto.With(reg)

	return &EngineMetrics{
		QuotesComputed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shiprates",
			Name:      "quotes_computed_total",
			Help:      "Number of rate quotes produced by the calculator.",
		}),
		CoverageSkips: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "shiprates",
			Name:      "coverage_skips_total",
			Help:      "Number of courier/service pairs skipped for missing coverage.",
		}),
		BatchShipments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shiprates",
			Name:      "batch_shipments_total",
			Help:      "Batch shipment outcomes partitioned by result.",
		}, []string{"outcome"}),
		AggregationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shiprates",
			Name:      "aggregation_duration_seconds",
			Help:      "Wall time of one rate aggregation pass.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// NewNopEngineMetrics creates unregistered collectors for tests and tools
// that do not scrape metrics.
func NewNopEngineMetrics() *EngineMetrics {
	return NewEngineMetrics(prometheus.NewRegistry())
}
