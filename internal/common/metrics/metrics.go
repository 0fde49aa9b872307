// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eligibility_evaluations_total",
			Help: "Total number of eligibility evaluations by outcome",
		},
		[]string{"outcome"},
	)

	SchemesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_schemes_skipped_total",
			Help: "Total number of schemes skipped during ranking by reason",
		},
		[]string{"reason"},
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommendation_ranking_duration_seconds",
			Help: "Duration of a full ranking pass in seconds",
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendations_returned",
			Help:    "Number of recommendations returned per ranking pass",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)
)
