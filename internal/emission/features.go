// Package emission predicts per-material CO2 emission scores from the
// pretrained scaler and regression artifacts, falling back to the catalog's
// reference score when either artifact is absent.
package emission

import (
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

// FeatureNames is the column order both artifacts were trained on.
var FeatureNames = []string{
	"Strength",
	"Weight_Capacity",
	"Cost_Per_Unit_INR",
	"Biodegradability_Score",
	"Recyclability",
}

// Features returns the raw feature vector for m in FeatureNames order.
func Features(m store.Material) []float64 {
	return []float64{
		m.Strength,
		m.WeightCapacity,
		m.CostPerUnit,
		m.Biodegradability,
		m.Recyclability,
	}
}

func checkFeatureNames(artifact string, got []string) error {
	if len(got) != len(FeatureNames) {
		return fmt.Errorf("%s: expected %d features %v, got %d %v",
			artifact, len(FeatureNames), FeatureNames, len(got), got)
	}
	for i, name := range FeatureNames {
		if got[i] != name {
			return fmt.Errorf("%s: feature %d is %q, expected %q", artifact, i, got[i], name)
		}
	}
	return nil
}

func checkFinite(artifact, field string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %s[%d] is not finite (%v)", artifact, field, i, v)
		}
	}
	return nil
}
