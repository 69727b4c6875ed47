package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of every HTTP request, by route template
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kiosk_http_request_duration_seconds",
		Help:    "Latency of HTTP requests by method, route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// Time spent inside the recommendation engine, by mode (recommend, mix_match)
	EngineLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kiosk_engine_latency_seconds",
		Help:    "Latency of recommendation engine calls",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"mode"})

	EngineErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_engine_errors_total",
		Help: "Total number of failed engine calls by mode and kind",
	}, []string{"mode", "kind"})

	// 0 closed, 1 half-open, 2 open
	BreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kiosk_breaker_state",
		Help: "Circuit breaker state by breaker name",
	}, []string{"name"})

	BreakerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_breaker_requests_total",
		Help: "Calls through a circuit breaker by name and result",
	}, []string{"name", "result"})

	// Change-room requests entering each status, creation included
	ChangeRoomRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_change_room_requests_total",
		Help: "Change-room requests by the status they moved into",
	}, []string{"status"})

	FeedbackRatings = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kiosk_feedback_rating",
		Help:    "Distribution of session feedback ratings",
		Buckets: []float64{1, 2, 3, 4, 5},
	})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		EngineLatency,
		EngineErrors,
		BreakerState,
		BreakerRequests,
		ChangeRoomRequestsTotal,
		FeedbackRatings,
	)
}
