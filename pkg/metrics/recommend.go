package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the Recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "route_recommend_latency_seconds",
		Help:    "Latency of route recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Recommend requests by response status class
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_recommend_requests_total",
		Help: "Total number of route recommend requests",
	}, []string{"status"})

	FeedbackRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_feedback_requests_total",
		Help: "Total number of route feedback requests",
	}, []string{"status"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		FeedbackRequests,
	)
}
