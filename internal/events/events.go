// Package events publishes recommendation lifecycle events to NATS JetStream.
package events

import "time"

// RecommendationGeneratedEvent is published after a successful ranking.
type RecommendationGeneratedEvent struct {
	RecommendationID string    `json:"recommendation_id"`
	Category         string    `json:"product_category"`
	Fragility        string    `json:"fragility"`
	ShippingType     string    `json:"shipping_type"`
	Priority         string    `json:"sustainability_priority"`
	Materials        []string  `json:"materials"`
	Candidates       int       `json:"candidates"`
	Degraded         bool      `json:"degraded"`
	Timestamp        time.Time `json:"timestamp"`
}

// RecommendationNoMatchEvent is published when filtering leaves no candidates.
type RecommendationNoMatchEvent struct {
	RecommendationID string    `json:"recommendation_id"`
	Category         string    `json:"product_category"`
	Fragility        string    `json:"fragility"`
	Stage            string    `json:"stage"`
	Timestamp        time.Time `json:"timestamp"`
}

type ModelDegradedEvent struct {
	MissingArtifacts []string  `json:"missing_artifacts"`
	Timestamp        time.Time `json:"timestamp"`
}
