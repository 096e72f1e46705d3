package store

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Fallback reasons reported to MetricsCollector.RecordFallback
const (
	FallbackMissing     = "missing"
	FallbackReadError   = "read_error"
	FallbackDecodeError = "decode_error"
)

// MetricsCollector defines the interface for collecting store metrics
type MetricsCollector interface {
	RecordRead(key string, success bool)
	RecordFallback(key, reason string)
	RecordWrite(key string, success bool)
}

// NoOpMetricsCollector is a no-op implementation for when metrics aren't needed
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordRead(key string, success bool)  {}
func (NoOpMetricsCollector) RecordFallback(key, reason string)    {}
func (NoOpMetricsCollector) RecordWrite(key string, success bool) {}

// PrometheusMetrics implements MetricsCollector using Prometheus
type PrometheusMetrics struct {
	reads     *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	writes    *prometheus.CounterVec
}

// NewPrometheusMetrics creates the store collectors and registers them on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liga",
			Subsystem: "store",
			Name:      "reads_total",
			Help:      "Backend reads by key and outcome.",
		}, []string{"key", "status"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liga",
			Subsystem: "store",
			Name:      "fallbacks_total",
			Help:      "Loads that fell back to the default value, by key and reason.",
		}, []string{"key", "reason"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liga",
			Subsystem: "store",
			Name:      "writes_total",
			Help:      "Backend writes by key and outcome.",
		}, []string{"key", "status"}),
	}
	reg.MustRegister(m.reads, m.fallbacks, m.writes)
	return m
}

func (m *PrometheusMetrics) RecordRead(key string, success bool) {
	m.reads.WithLabelValues(key, status(success)).Inc()
}

func (m *PrometheusMetrics) RecordFallback(key, reason string) {
	m.fallbacks.WithLabelValues(key, reason).Inc()
}

func (m *PrometheusMetrics) RecordWrite(key string, success bool) {
	m.writes.WithLabelValues(key, status(success)).Inc()
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
