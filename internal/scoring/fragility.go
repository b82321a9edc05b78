package scoring

import (
	"strings"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

// Fragility is the product's fragility level as supplied by the caller.
// Values other than the three bands, including the empty string, are kept
// verbatim and impose nothing.
type Fragility string

const (
	FragilityLow    Fragility = "low"
	FragilityMedium Fragility = "medium"
	FragilityHigh   Fragility = "high"
)

const (
	highMinStrength   = 3.0
	mediumMinStrength = 2.0

	highStrengthBoost   = 0.20
	mediumStrengthBoost = 0.10
)

// ParseFragility lower-cases and trims s.
func ParseFragility(s string) Fragility {
	return Fragility(strings.ToLower(strings.TrimSpace(s)))
}

// MinStrength returns the strength floor for the band, if it has one.
func (f Fragility) MinStrength() (float64, bool) {
	switch f {
	case FragilityHigh:
		return highMinStrength, true
	case FragilityMedium:
		return mediumMinStrength, true
	default:
		return 0, false
	}
}

// StrengthBoost is added to the strength coefficient of the suitability term.
func (f Fragility) StrengthBoost() float64 {
	switch f {
	case FragilityHigh:
		return highStrengthBoost
	case FragilityMedium:
		return mediumStrengthBoost
	default:
		return 0
	}
}

// FilterByFragility drops materials below the band's strength floor and
// returns the suitability boost for the band. Fragility is a safety
// constraint: an empty result is a NoMatchError, never a fallback.
func FilterByFragility(materials []store.Material, f Fragility) ([]store.Material, float64, error) {
	floor, ok := f.MinStrength()
	if !ok {
		if len(materials) == 0 {
			return nil, 0, &NoMatchError{Stage: StageFragility, Value: string(f)}
		}
		return materials, f.StrengthBoost(), nil
	}
	out := make([]store.Material, 0, len(materials))
	for _, m := range materials {
		if m.Strength >= floor {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, 0, &NoMatchError{Stage: StageFragility, Value: string(f)}
	}
	return out, f.StrengthBoost(), nil
}
