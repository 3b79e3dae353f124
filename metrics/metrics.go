package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivery_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_api_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_api_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		},
	)

	// Order metrics
	OrderOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_api_order_operations_total",
			Help: "Total number of order operations",
		},
		[]string{"operation"},
	)
)

// RecordOrderOperation increments the counter for order operations
func RecordOrderOperation(operation string) {
	OrderOperationsTotal.WithLabelValues(operation).Inc()
}
