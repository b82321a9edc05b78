package api

import (
	"errors"
	"math"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MikeSquared-Agency/EcoPack/internal/recommend"
	"github.com/MikeSquared-Agency/EcoPack/internal/scoring"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Stage   string   `json:"stage,omitempty"`
}

// writeJSON encodes before writing the status so an encoding failure
// still produces a 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error","details":"encode response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// writeError maps service errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var verr *recommend.ValidationError
	var nm *scoring.NoMatchError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required fields", Details: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, recommend.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request", Details: err.Error()})
	case errors.As(err, &nm):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "No materials match the request", Details: nm.Error(), Stage: string(nm.Stage)})
	case errors.Is(err, recommend.ErrDataUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "No materials data available"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error", Details: err.Error()})
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
