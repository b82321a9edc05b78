package scoring

import (
	"fmt"
	"math"
	"strings"
)

// WeightSet defines the relative importance of cost, CO2 and suitability in
// the final score. All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	Cost        float64 `json:"cost"`
	CO2         float64 `json:"co2"`
	Suitability float64 `json:"suitability"`
}

// Priority is the caller's sustainability priority band.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority is total: anything other than high or medium is low.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Weights returns the fixed weight triple for the band. Higher sustainability
// priority moves weight from cost to CO2 and suitability.
func (p Priority) Weights() WeightSet {
	switch p {
	case PriorityHigh:
		return WeightSet{Cost: 0.20, CO2: 0.40, Suitability: 0.40}
	case PriorityMedium:
		return WeightSet{Cost: 0.30, CO2: 0.35, Suitability: 0.35}
	default:
		return WeightSet{Cost: 0.40, CO2: 0.30, Suitability: 0.30}
	}
}

// SelectWeights maps a raw priority label to its weight triple.
func SelectWeights(priority string) WeightSet {
	return ParsePriority(priority).Weights()
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Cost + w.CO2 + w.Suitability
}

// validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Cost, w.CO2, w.Suitability} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
