package scoring

import (
	"log/slog"
	"sort"

	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

// DefaultTopK is how many recommendations a ranking keeps.
const DefaultTopK = 5

// CO2Predictor produces one non-negative CO2 prediction per material, in
// order, and reports whether the fallback source was used.
type CO2Predictor interface {
	PredictCO2(materials []store.Material) ([]float64, bool)
}

// Criteria is the caller's request after transport decoding.
type Criteria struct {
	Category     string `json:"product_category"`
	Fragility    string `json:"fragility"`
	ShippingType string `json:"shipping_type"` // carried through, not scored
	Priority     string `json:"sustainability_priority"`
}

// ScoredMaterial is a candidate annotated with its scores.
type ScoredMaterial struct {
	Material      store.Material `json:"material"`
	PredictedCO2  float64        `json:"predicted_co2"`
	Suitability   float64        `json:"suitability"` // rescaled into [0,1]; FinalScore uses the boosted value
	FinalScore    float64        `json:"final_score"`
	Factors       []FactorResult `json:"factors"`
	ParetoOptimal bool           `json:"pareto_optimal"`
}

// Ranking is the ordered output of one ScoreAndRank call.
type Ranking struct {
	Items      []ScoredMaterial `json:"items"`
	Weights    WeightSet        `json:"weights"`
	Category   Category         `json:"-"`
	Fragility  Fragility        `json:"fragility"`
	Candidates int              `json:"candidates"`
	Degraded   bool             `json:"degraded"`
}

// Options configures an Engine.
type Options struct {
	TopK          int
	ParetoEnabled bool
}

// Engine runs the filter → predict → normalize → score → rank pipeline. It
// holds no per-request state and is safe for concurrent use.
type Engine struct {
	predictor     CO2Predictor
	topK          int
	paretoEnabled bool
	logger        *slog.Logger
}

func NewEngine(predictor CO2Predictor, opts Options, logger *slog.Logger) *Engine {
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{
		predictor:     predictor,
		topK:          topK,
		paretoEnabled: opts.ParetoEnabled,
		logger:        logger,
	}
}

// ScoreAndRank filters the catalog for the criteria and returns the top
// candidates by descending final score. Ties keep catalog order.
// Normalization is relative to the candidates that survived filtering.
func (e *Engine) ScoreAndRank(c Criteria, catalog []store.Material) (Ranking, error) {
	if len(catalog) == 0 {
		return Ranking{}, store.ErrEmptyCatalog
	}

	category := ParseCategory(c.Category)
	fragility := ParseFragility(c.Fragility)
	weights := SelectWeights(c.Priority)

	candidates, err := FilterByCategory(catalog, category)
	if err != nil {
		return Ranking{}, err
	}
	candidates, boost, err := FilterByFragility(candidates, fragility)
	if err != nil {
		return Ranking{}, err
	}

	co2, degraded := e.predictor.PredictCO2(candidates)

	n := len(candidates)
	strength := make([]float64, n)
	recyc := make([]float64, n)
	bio := make([]float64, n)
	cost := make([]float64, n)
	for i, m := range candidates {
		strength[i] = m.Strength
		recyc[i] = m.Recyclability
		bio[i] = m.Biodegradability
		cost[i] = m.CostPerUnit
	}
	strengthRange := RangeOf(strength)
	recycRange := RangeOf(recyc)
	bioRange := RangeOf(bio)
	costRange := RangeOf(cost)
	co2Range := RangeOf(co2)

	scored := make([]ScoredMaterial, n)
	for i, m := range candidates {
		rawSuit := suitability(suitabilityInputs{
			strength:         Normalize(m.Strength, strengthRange),
			recyclability:    Normalize(m.Recyclability, recycRange),
			biodegradability: Normalize(m.Biodegradability, bioRange),
		}, boost)

		factors := []FactorResult{
			costFactor(Normalize(m.CostPerUnit, costRange)),
			co2Factor(Normalize(co2[i], co2Range)),
			suitabilityFactor(rawSuit),
		}
		scored[i] = ScoredMaterial{
			Material:     m,
			PredictedCO2: co2[i],
			Suitability:  displaySuitability(rawSuit, boost),
			FinalScore:   applyWeights(factors, weights),
			Factors:      factors,
		}
	}

	if e.paretoEnabled {
		points := make([]paretoPoint, n)
		for i, s := range scored {
			points[i] = paretoPoint{cost: s.Material.CostPerUnit, co2: s.PredictedCO2, suitability: s.Suitability}
		}
		for i, optimal := range paretoFrontier(points) {
			scored[i].ParetoOptimal = optimal
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	if len(scored) > e.topK {
		scored = scored[:e.topK]
	}

	e.logger.Debug("ranked materials",
		"category", category.String(),
		"fragility", string(fragility),
		"catalog", len(catalog),
		"candidates", n,
		"returned", len(scored),
		"degraded", degraded,
	)

	return Ranking{
		Items:      scored,
		Weights:    weights,
		Category:   category,
		Fragility:  fragility,
		Candidates: n,
		Degraded:   degraded,
	}, nil
}
