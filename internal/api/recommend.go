package api

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MikeSquared-Agency/EcoPack/internal/recommend"
)

type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Result, error)
}

type RecommendHandler struct {
	svc Recommender
}

func NewRecommendHandler(svc Recommender) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

type materialResponse struct {
	Material         string  `json:"material"`
	PredictedCost    float64 `json:"predicted_cost"`
	PredictedCO2     float64 `json:"predicted_co2"`
	SuitabilityScore float64 `json:"suitability_score"`
	FinalScore       float64 `json:"final_score"`
	ParetoOptimal    bool    `json:"pareto_optimal,omitempty"`
}

type recommendResponse struct {
	RecommendationID     string             `json:"recommendation_id"`
	Degraded             bool               `json:"degraded"`
	RecommendedMaterials []materialResponse `json:"recommended_materials"`
}

func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	res, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	out := recommendResponse{
		RecommendationID:     res.RecommendationID,
		Degraded:             res.Degraded(),
		RecommendedMaterials: make([]materialResponse, len(res.Ranking.Items)),
	}
	for i, item := range res.Ranking.Items {
		out.RecommendedMaterials[i] = materialResponse{
			Material:         item.Material.Name,
			PredictedCost:    round2(item.Material.CostPerUnit),
			PredictedCO2:     round2(item.PredictedCO2),
			SuitabilityScore: round2(item.Suitability),
			FinalScore:       round2(item.FinalScore),
			ParetoOptimal:    item.ParetoOptimal,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
