package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	DashboardRefreshCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_refresh_count",
			Help: "Dashboard summary refresh attempts",
		},
		[]string{"outcome"}, // outcome: fresh, cached, inflight, error
	)

	InsightConsumedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_consumed_count",
			Help: "AI insight messages consumed from the bus",
		},
		[]string{"status"}, // status: success, invalid, failed
	)

	ImageUploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_upload_bytes_total",
			Help: "Total bytes of site photos stored",
		},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementDashboardRefresh(outcome string) {
	DashboardRefreshCount.WithLabelValues(outcome).Inc()
}

func IncrementInsightConsumed(status string) {
	InsightConsumedCount.WithLabelValues(status).Inc()
}
