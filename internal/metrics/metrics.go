// Package metrics defines the Prometheus collectors exported by both servers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector the application records to.
// Each server owns one instance backed by its own registry.
type Metrics struct {
	registry *prometheus.Registry

	TotalRequests   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	Subscribers      prometheus.Gauge
	SamplesPublished prometheus.Counter
	SampleErrors     prometheus.Counter
	LoopStarts       prometheus.Counter
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		TotalRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		Subscribers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "monitor_subscribers",
				Help: "Number of connected WebSocket clients",
			},
		),

		SamplesPublished: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "monitor_samples_published_total",
				Help: "Total number of host samples broadcast to clients",
			},
		),

		SampleErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "monitor_sample_errors_total",
				Help: "Total number of failed host samples",
			},
		),

		LoopStarts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "monitor_loop_starts_total",
				Help: "Number of times the broadcast loop was started",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.TotalRequests,
		m.RequestDuration,
		m.Subscribers,
		m.SamplesPublished,
		m.SampleErrors,
		m.LoopStarts,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
