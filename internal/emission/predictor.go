package emission

import (
	"log/slog"
	"math"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

// Predictor turns materials into CO2 predictions. It is immutable after
// construction and safe for concurrent use.
type Predictor struct {
	scaler *Scaler
	model  Regressor
	logger *slog.Logger
}

func NewPredictor(a Artifacts, logger *slog.Logger) *Predictor {
	return &Predictor{scaler: a.Scaler, model: a.Model, logger: logger}
}

// Degraded reports whether predictions come from the catalog reference score.
func (p *Predictor) Degraded() bool {
	return p.scaler == nil || p.model == nil
}

// ModelVersion returns the loaded model's version, or "" in degraded mode.
func (p *Predictor) ModelVersion() string {
	if p.Degraded() {
		return ""
	}
	return p.model.Version()
}

// PredictCO2 returns one non-negative prediction per material, in order,
// and whether the fallback source was used.
func (p *Predictor) PredictCO2(materials []store.Material) ([]float64, bool) {
	out := make([]float64, len(materials))
	degraded := p.Degraded()
	if degraded {
		p.logger.Warn("co2 model unavailable, using catalog reference scores",
			"scaler_loaded", p.scaler != nil,
			"model_loaded", p.model != nil,
			"materials", len(materials),
		)
	}
	for i, m := range materials {
		var y float64
		if degraded {
			y = m.CO2Reference
		} else {
			y = p.model.Predict(p.scaler.Transform(Features(m)))
			if math.IsNaN(y) || math.IsInf(y, 0) {
				p.logger.Warn("co2 model produced a non-finite value, using catalog reference score",
					"material", m.Name)
				y = m.CO2Reference
			}
		}
		if y < 0 || math.IsNaN(y) {
			y = 0
		}
		out[i] = y
	}
	return out, degraded
}

// MissingArtifacts names the artifacts that were not loaded.
func (p *Predictor) MissingArtifacts() []string {
	var missing []string
	if p.scaler == nil {
		missing = append(missing, "scaler")
	}
	if p.model == nil {
		missing = append(missing, "model")
	}
	return missing
}
