package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements MetricsRecorderInterface on a Prometheus
// registry. Metric names used by the engine are mapped onto a small fixed set of
// collectors; unknown names are ignored.
type PrometheusMetrics struct {
	fetchesTotal     *prometheus.CounterVec
	fetchDuration    prometheus.Histogram
	exportRows       prometheus.Histogram
	viewTransactions prometheus.Gauge
	mutationsTotal   *prometheus.CounterVec
}

// NewPrometheusMetrics registers the engine's collectors on the default
// registry.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		fetchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "view_fetches_total",
			Help: "View fetch cycles by outcome (issued, applied, stale_discarded, failed)",
		}, []string{"outcome"}),
		fetchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "view_fetch_duration_milliseconds",
			Help:    "Wall time of one full view fetch cycle",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		exportRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "view_export_rows",
			Help:    "Data rows per export artifact",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		viewTransactions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "view_transactions_loaded",
			Help: "Transactions in the last applied fetch",
		}),
		mutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_mutations_total",
			Help: "Mutations forwarded to the ledger service by operation and status",
		}, []string{"operation", "status"}),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "view.fetch.issued":
		m.fetchesTotal.WithLabelValues("issued").Inc()
	case "view.fetch.applied":
		m.fetchesTotal.WithLabelValues("applied").Inc()
	case "view.fetch.stale_discarded":
		m.fetchesTotal.WithLabelValues("stale_discarded").Inc()
	case "view.fetch.failed":
		m.fetchesTotal.WithLabelValues("failed").Inc()
	case "ledger.mutation":
		if tags["operation"] != "" {
			m.mutationsTotal.WithLabelValues(tags["operation"], tags["status"]).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "view.fetch" {
		m.fetchDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, _ map[string]string) {
	switch name {
	case "view.transactions":
		m.viewTransactions.Set(value)
	case "view.export.rows":
		m.exportRows.Observe(value)
	}
}

// noopMetrics discards everything; used when metrics are disabled and in tests.
type noopMetrics struct{}

// NewNoopMetricsRecorder returns a recorder that drops all measurements.
func NewNoopMetricsRecorder() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
