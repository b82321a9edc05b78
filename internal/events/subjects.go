package events

import "time"

const (
	SubjectModelDegraded = "ecopack.model.degraded"

	StreamName   = "ECOPACK_EVENTS"
	StreamMaxAge = 7 * 24 * time.Hour
)

func SubjectRecommendationGenerated(id string) string {
	return "ecopack.recommendation." + id + ".generated"
}

func SubjectRecommendationNoMatch(id string) string {
	return "ecopack.recommendation." + id + ".no_match"
}
