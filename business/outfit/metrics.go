package outfit

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_recommendations_served_total",
			Help: "Count of recommended items returned, by target category.",
		},
		[]string{"category"},
	)

	CandidateScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "outfit_candidate_score",
		Help:    "Distribution of pairwise scores of returned recommendations.",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	OutfitCombinationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_combinations_total",
			Help: "Count of enumerated outfit triples, by result (accepted or clash).",
		},
		[]string{"result"},
	)

	PersonalizedRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_personalized_requests_total",
			Help: "Count of engine requests by mode and whether a profile was resolved.",
		},
		[]string{"mode", "personalized"},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsServedTotal,
		CandidateScore,
		OutfitCombinationsTotal,
		PersonalizedRequestsTotal,
	)
}
