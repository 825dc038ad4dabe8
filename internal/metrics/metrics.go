// Package metrics defines the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, route pattern and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settleup_http_requests_total",
			Help: "HTTP requests processed, by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "settleup_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SettlementsComputed counts settlement engine invocations.
	SettlementsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settleup_settlements_computed_total",
			Help: "Settlement computations performed.",
		},
	)

	// TransfersPerSettlement observes how many transfers each
	// computation emits.
	TransfersPerSettlement = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "settleup_transfers_per_settlement",
			Help:    "Number of transfers emitted per settlement computation.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)
)
