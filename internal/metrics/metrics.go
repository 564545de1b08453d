package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CeSendDuration tracks the latency of the whole CE send flow, coupon creation included
	CeSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pulse_ce_send_duration_seconds",
			Help: "Duration of CE send requests in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
			},
		},
		[]string{"status"}, // success or failure
	)

	// SoftFailures counts swallowed touchpoint and email errors
	SoftFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_soft_failures_total",
			Help: "Best-effort steps that failed without failing the request",
		},
		[]string{"step"}, // touchpoint, email
	)

	// CouponRequests counts coupon gateway calls by outcome
	CouponRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_coupon_requests_total",
			Help: "Coupon gateway requests by outcome",
		},
		[]string{"outcome"}, // created, not_configured, error
	)

	// StatsCacheLookups counts manager dashboard cache hits and misses
	StatsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_stats_cache_lookups_total",
			Help: "Manager statistics cache lookups",
		},
		[]string{"result"}, // hit or miss
	)
)

// RecordCeSendDuration records the duration of a CE send request
func RecordCeSendDuration(status string, duration float64) {
	CeSendDuration.WithLabelValues(status).Observe(duration)
}

// RecordSoftFailure counts a best-effort step that failed
func RecordSoftFailure(step string) {
	SoftFailures.WithLabelValues(step).Inc()
}

// RecordCouponRequest counts a coupon gateway call
func RecordCouponRequest(outcome string) {
	CouponRequests.WithLabelValues(outcome).Inc()
}

// RecordStatsCache counts a statistics cache lookup
func RecordStatsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	StatsCacheLookups.WithLabelValues(result).Inc()
}
