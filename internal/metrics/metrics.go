package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported at /metrics.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	calcMismatches  *prometheus.CounterVec
	exports         *prometheus.CounterVec
}

// New registers the service collectors on registerer. A nil registerer uses
// the prometheus default registry.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cyltrack_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cyltrack_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route", "method"}),
		calcMismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cyltrack_delivery_calc_mismatch_total",
			Help: "Deliveries whose client-computed fields disagree with the server's arithmetic.",
		}, []string{"field"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cyltrack_exports_total",
			Help: "Daily delivery exports by format and destination.",
		}, []string{"format", "destination"}),
	}

	registerer.MustRegister(m.requests, m.requestDuration, m.calcMismatches, m.exports)
	return m
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// CalcMismatch counts one disagreeing calculated field.
func (m *Metrics) CalcMismatch(field string) {
	if m == nil {
		return
	}
	m.calcMismatches.WithLabelValues(field).Inc()
}

// Export counts one generated export. destination is "download" or "share".
func (m *Metrics) Export(format, destination string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format, destination).Inc()
}
