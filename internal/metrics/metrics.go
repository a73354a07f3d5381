// Package metrics exposes resolver counters and gateway latency for
// Prometheus scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several servers (and tests) can live
// in one process.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	fetches  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heritage",
			Subsystem: "resolver",
			Name:      "requests_total",
			Help:      "Resource requests by negotiated format and response status.",
		}, []string{"format", "status"}),
		fetches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "heritage",
			Subsystem: "gateway",
			Name:      "fetch_seconds",
			Help:      "Knowledge store fetch latency by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.fetches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest counts one resource response. format is empty when the
// path could not be parsed.
func (m *Metrics) ObserveRequest(format string, status int) {
	if m == nil {
		return
	}
	if format == "" {
		format = "none"
	}
	m.requests.WithLabelValues(format, strconv.Itoa(status)).Inc()
}

// ObserveFetch records one gateway fetch. outcome is "found", "not_found",
// "upstream_error" or "timeout".
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
