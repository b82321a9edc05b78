package emission

import "fmt"

// Scaler is a standard scaler: x' = (x - mean) / scale, per feature.
type Scaler struct {
	Kind         string    `yaml:"kind"`
	Version      string    `yaml:"version"`
	FeatureNames []string  `yaml:"feature_names"`
	Mean         []float64 `yaml:"mean"`
	Scale        []float64 `yaml:"scale"`
}

func (s *Scaler) validate() error {
	if s.Kind != "" && s.Kind != "standard_scaler" {
		return fmt.Errorf("scaler: unsupported kind %q", s.Kind)
	}
	if err := checkFeatureNames("scaler", s.FeatureNames); err != nil {
		return err
	}
	if len(s.Mean) != len(s.FeatureNames) || len(s.Scale) != len(s.FeatureNames) {
		return fmt.Errorf("scaler: mean/scale length (%d/%d) does not match %d features",
			len(s.Mean), len(s.Scale), len(s.FeatureNames))
	}
	if err := checkFinite("scaler", "mean", s.Mean...); err != nil {
		return err
	}
	return checkFinite("scaler", "scale", s.Scale...)
}

// Transform scales x into a new slice. A zero scale is treated as 1,
// matching how constant features are stored by the training pipeline.
func (s *Scaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out
}
