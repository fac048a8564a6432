// Package metrics exposes Prometheus instrumentation for dock status fetches
// and the viewer's polling loop.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dock_status"

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	outcomes      *prometheus.CounterVec
	loops         prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_total",
				Help:      "Status document fetches by result.",
			},
			[]string{"result"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Latency of status document fetches.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outcome_total",
				Help:      "Viewer evaluation outcomes by controller state.",
			},
			[]string{"outcome"},
		),
		loops: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "poll_loops_active",
				Help:      "Number of running polling loops.",
			},
		),
	}

	reg.MustRegister(m.fetches, m.fetchDuration, m.outcomes, m.loops)
	return m
}

// ObserveFetch records one fetch that started at start and ended with err.
func (m *Metrics) ObserveFetch(start time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fetches.WithLabelValues(result).Inc()
	m.fetchDuration.Observe(time.Since(start).Seconds())
}

// Outcome counts one evaluation outcome.
func (m *Metrics) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(outcome).Inc()
}

// LoopStarted increments the active loop gauge.
func (m *Metrics) LoopStarted() {
	if m == nil {
		return
	}
	m.loops.Inc()
}

// LoopStopped decrements the active loop gauge.
func (m *Metrics) LoopStopped() {
	if m == nil {
		return
	}
	m.loops.Dec()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
