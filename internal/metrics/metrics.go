package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	pointsInsertedCounter prometheus.Counter
	buildCounter          *prometheus.CounterVec
	buildDuration         prometheus.Histogram
	treeWeightGauge       prometheus.Gauge
	treeEdgesGauge        prometheus.Gauge
	rejectedInputCounter  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Passing a fresh prometheus.NewRegistry() keeps instances isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := new(Metrics)

	metrics.pointsInsertedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mstgen_points_inserted_total",
		Help: "The number of points appended to the point set",
	})

	metrics.buildCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mstgen_builds_total",
		Help: "The number of full MST rebuilds per method",
	}, []string{"method"})

	metrics.buildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mstgen_build_duration_seconds",
		Help:    "Time spent rebuilding the MST after an insertion",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})

	metrics.treeWeightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mstgen_tree_weight",
		Help: "Total Euclidean weight of the most recent MST",
	})

	metrics.treeEdgesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mstgen_tree_edges",
		Help: "Number of edges in the most recent MST",
	})

	metrics.rejectedInputCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mstgen_rejected_input_total",
		Help: "The number of input lines or coordinates that were rejected",
	})

	reg.MustRegister(
		metrics.pointsInsertedCounter,
		metrics.buildCounter,
		metrics.buildDuration,
		metrics.treeWeightGauge,
		metrics.treeEdgesGauge,
		metrics.rejectedInputCounter,
	)

	return metrics
}

// PointInserted counts one insertion. Safe on a nil receiver.
func (m *Metrics) PointInserted() {
	if m == nil {
		return
	}
	m.pointsInsertedCounter.Inc()
}

// BuildCompleted records one rebuild. Safe on a nil receiver.
func (m *Metrics) BuildCompleted(method string, elapsed time.Duration, weight float64, edges int) {
	if m == nil {
		return
	}
	m.buildCounter.WithLabelValues(method).Inc()
	m.buildDuration.Observe(elapsed.Seconds())
	m.treeWeightGauge.Set(weight)
	m.treeEdgesGauge.Set(float64(edges))
}

// InputRejected counts one rejected input. Safe on a nil receiver.
func (m *Metrics) InputRejected() {
	if m == nil {
		return
	}
	m.rejectedInputCounter.Inc()
}
