// Package monitoring provides Prometheus metrics for the scripthost backend.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec
	ServiceErrors   *prometheus.CounterVec

	// File-list registry metrics
	ListsActive  prometheus.Gauge
	EntriesTotal prometheus.Gauge

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scripthost_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scripthost_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		ServiceCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scripthost_service_calls_total",
				Help: "Total number of service tool calls",
			},
			[]string{"service", "tool", "status"},
		),
		ServiceDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scripthost_service_duration_seconds",
				Help:    "Service tool call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "tool"},
		),
		ServiceErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scripthost_service_errors_total",
				Help: "Total number of service tool errors",
			},
			[]string{"service", "tool"},
		),

		ListsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "scripthost_filelist_lists_active",
				Help: "Number of file lists currently registered",
			},
		),
		EntriesTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "scripthost_filelist_entries_total",
				Help: "Number of path entries across all file lists",
			},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "scripthost_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordServiceCall records a service tool call
func (m *Metrics) RecordServiceCall(service, tool, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, tool, status).Inc()
	m.ServiceDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
	if status != "success" {
		m.ServiceErrors.WithLabelValues(service, tool).Inc()
	}
}

// SetFilelistStats updates the file-list registry gauges
func (m *Metrics) SetFilelistStats(lists, entries int) {
	m.ListsActive.Set(float64(lists))
	m.EntriesTotal.Set(float64(entries))
}
