package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CandidateFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_candidates_fallback_total",
			Help: "Count of ranking passes served from the built-in catalog, by reason.",
		},
		[]string{"reason"},
	)

	RouteStoreBreakerState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "route_store_breaker_state",
			Help: "State of the route store circuit breaker (0 closed, 1 half-open, 2 open).",
		},
	)

	RecommendationsServed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendations_returned",
			Help:    "Number of routes returned per recommendation request.",
			Buckets: []float64{0, 1, 3, 6, 10, 20, 50},
		},
	)

	ArchetypeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_archetype_total",
			Help: "Count of returned recommendations by archetype.",
		},
		[]string{"archetype"},
	)

	FeedbackUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_feedback_total",
			Help: "Count of feedback submissions by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		CandidateFallbackTotal,
		RouteStoreBreakerState,
		RecommendationsServed,
		ArchetypeTotal,
		FeedbackUpdatesTotal,
	)
}
