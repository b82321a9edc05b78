// Package metrics holds the Prometheus collectors for the recommendation
// service. They are registered on the default registry and served by the
// metrics server at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeNoMatch     = "no_match"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecopack_recommendations_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ecopack_recommendation_duration_seconds",
			Help:    "Time to fetch the catalog and rank materials",
			Buckets: prometheus.DefBuckets,
		},
	)

	DegradedPredictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecopack_co2_degraded_predictions_total",
			Help: "CO2 predictions served from the catalog reference score instead of the model",
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ecopack_catalog_size",
			Help: "Number of complete materials returned by the last catalog read",
		},
	)
)
