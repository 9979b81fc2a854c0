package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors on a dedicated registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTPRequests counts requests by method, path, and status
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration records request durations in seconds
	HTTPDuration *prometheus.HistogramVec

	// Estimates counts estimator runs by priority and outcome
	Estimates *prometheus.CounterVec
	// EstimateDuration records estimator latency in seconds
	EstimateDuration prometheus.Histogram
	// FuelSaved accumulates projected liters saved across estimates
	FuelSaved prometheus.Counter

	// MarkerFeeds tracks open live-marker websocket connections
	MarkerFeeds prometheus.Gauge
}

// New creates and registers all collectors, including Go/process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "path", "status"},
		),
		Estimates: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "route_estimates_total", Help: "Route estimates by priority and outcome."},
			[]string{"priority", "outcome"},
		),
		EstimateDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "route_estimate_duration_seconds", Help: "Route estimate duration in seconds.", Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5}},
		),
		FuelSaved: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "route_estimate_fuel_saved_liters_total", Help: "Projected fuel saved across estimates in liters."},
		),
		MarkerFeeds: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "marker_feed_connections", Help: "Open live marker feed connections."},
		),
	}

	m.Registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Estimates,
		m.EstimateDuration,
		m.FuelSaved,
		m.MarkerFeeds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, path string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.HTTPRequests.WithLabelValues(method, path, code).Inc()
	m.HTTPDuration.WithLabelValues(method, path, code).Observe(dur.Seconds())
}

func (m *Metrics) ObserveEstimate(priority, outcome string, dur time.Duration, fuelSaved float64) {
	if m == nil {
		return
	}
	m.Estimates.WithLabelValues(priority, outcome).Inc()
	m.EstimateDuration.Observe(dur.Seconds())
	if fuelSaved > 0 {
		m.FuelSaved.Add(fuelSaved)
	}
}

func (m *Metrics) MarkerFeedOpened() {
	if m != nil {
		m.MarkerFeeds.Inc()
	}
}

func (m *Metrics) MarkerFeedClosed() {
	if m != nil {
		m.MarkerFeeds.Dec()
	}
}
