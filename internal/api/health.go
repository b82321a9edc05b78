package api

import (
	"context"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/EcoPack/internal/scoring"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ModelStatus interface {
	Degraded() bool
}

// breakerReporter is implemented by catalogs guarded by a circuit breaker.
type breakerReporter interface {
	State() string
}

type HealthHandler struct {
	db    Pinger
	model ModelStatus
}

func NewHealthHandler(db Pinger, model ModelStatus) *HealthHandler {
	return &HealthHandler{db: db, model: model}
}

type healthResponse struct {
	Message           string `json:"message"`
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	ModelLoaded       bool   `json:"model_loaded"`
	CatalogBreaker    string `json:"catalog_breaker,omitempty"`
}

// Health always answers 200 while the process is serving; the flags report
// dependency state.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{
		Message:           "EcoPack API is running",
		Status:            "online",
		DatabaseConnected: h.db != nil && h.db.Ping(ctx) == nil,
		ModelLoaded:       h.model != nil && !h.model.Degraded(),
	}
	if br, ok := h.db.(breakerReporter); ok {
		resp.CatalogBreaker = br.State()
	}
	writeJSON(w, http.StatusOK, resp)
}

type categoryResponse struct {
	Name string `json:"name"`
	Rule string `json:"rule"`
}

func Categories(w http.ResponseWriter, r *http.Request) {
	cats := scoring.Categories()
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse{Name: c.String(), Rule: c.Rule()}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": out})
}
