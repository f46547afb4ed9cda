// Package metrics holds the Prometheus collectors for the portfolio server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Project load results
const (
	LoadLoaded   = "loaded"
	LoadNotFound = "not_found"
	LoadError    = "error"
)

// Metrics owns a registry so tests and multiple servers do not collide.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	projectLoadsTotal   *prometheus.CounterVec
	privateSourceTotal  prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"route", "method", "code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "portfolio",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		projectLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Subsystem: "projects",
				Name:      "loads_total",
				Help:      "Project record loads grouped by result.",
			},
			[]string{"result"},
		),
		privateSourceTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Subsystem: "projects",
				Name:      "private_source_dialogs_total",
				Help:      "Times the private source dialog was shown.",
			},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.projectLoadsTotal,
		m.privateSourceTotal,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished request. Nil receivers are ignored.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveLoad records a project load result.
func (m *Metrics) ObserveLoad(result string) {
	if m == nil {
		return
	}
	m.projectLoadsTotal.WithLabelValues(result).Inc()
}

// ObservePrivateSource records one private source dialog.
func (m *Metrics) ObservePrivateSource() {
	if m == nil {
		return
	}
	m.privateSourceTotal.Inc()
}
