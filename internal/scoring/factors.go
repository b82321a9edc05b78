package scoring

// FactorResult captures one term's contribution to a material's final score.
type FactorResult struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// suitabilityInputs are the normalized physical attributes of one material.
type suitabilityInputs struct {
	strength         float64
	recyclability    float64
	biodegradability float64
}

// suitability blends strength, recyclability and biodegradability. The
// fragility boost raises the strength coefficient, so the result lies in
// [0, 1+boost]. This raw value feeds the final score.
func suitability(in suitabilityInputs, boost float64) float64 {
	return (0.4+boost)*in.strength + 0.3*in.recyclability + 0.3*in.biodegradability
}

// displaySuitability rescales a raw suitability into [0,1] for reporting.
func displaySuitability(raw, boost float64) float64 {
	return clamp(raw/(1.0+boost), 0, 1)
}

// costFactor rewards cheaper materials: 1 - normalized cost.
func costFactor(normCost float64) FactorResult {
	return FactorResult{Name: "cost_efficiency", Score: 1 - normCost}
}

// co2Factor rewards lower predicted emissions: 1 - normalized CO2.
func co2Factor(normCO2 float64) FactorResult {
	return FactorResult{Name: "co2_efficiency", Score: 1 - normCO2}
}

func suitabilityFactor(score float64) FactorResult {
	return FactorResult{Name: "suitability", Score: score}
}

func applyWeights(factors []FactorResult, w WeightSet) float64 {
	weights := []float64{w.Cost, w.CO2, w.Suitability}
	var total float64
	for i := range factors {
		factors[i].Weight = weights[i]
		factors[i].Weighted = factors[i].Score * weights[i]
		total += factors[i].Weighted
	}
	return total
}
