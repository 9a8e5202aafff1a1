package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the API's Prometheus collectors.
type Metrics struct {
	// identities generated, by country
	Generated *prometheus.CounterVec

	// rejected requests, by route
	ValidationFailures *prometheus.CounterVec

	// request latency, by route and status code
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the API collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Generated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zident_identities_generated_total",
			Help: "Total identities generated by country",
		}, []string{"country"}),

		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zident_validation_failures_total",
			Help: "Total requests rejected by validation",
		}, []string{"route"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zident_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// AddGenerated counts n identities for country.
func (m *Metrics) AddGenerated(country string, n int) {
	if m != nil {
		m.Generated.WithLabelValues(country).Add(float64(n))
	}
}

// IncValidationFailure counts a rejected request.
func (m *Metrics) IncValidationFailure(route string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(route).Inc()
	}
}

// ObserveRequest records a request's duration.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
