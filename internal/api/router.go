package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	CORSOrigins        []string
	RateLimitPerMinute int
}

func NewRouter(svc Recommender, db Pinger, model ModelStatus, opts RouterOptions, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(CORSMiddleware(opts.CORSOrigins))
	r.Use(RateLimitMiddleware(opts.RateLimitPerMinute))

	health := NewHealthHandler(db, model)
	rec := NewRecommendHandler(svc)

	r.Get("/", health.Health)
	r.Post("/recommend", rec.Recommend)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommend", rec.Recommend)
		r.Get("/categories", Categories)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
