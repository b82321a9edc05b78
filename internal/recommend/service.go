// Package recommend exposes the single recommendation operation: validate the
// request, read the catalog, rank materials and report the outcome.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/EcoPack/internal/events"
	"github.com/MikeSquared-Agency/EcoPack/internal/metrics"
	"github.com/MikeSquared-Agency/EcoPack/internal/scoring"
	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

// Result is a successful recommendation.
type Result struct {
	RecommendationID string           `json:"recommendation_id"`
	Criteria         scoring.Criteria `json:"criteria"`
	Ranking          scoring.Ranking  `json:"ranking"`
}

// Degraded reports whether CO2 values came from the catalog reference score.
func (r *Result) Degraded() bool {
	return r.Ranking.Degraded
}

type Service struct {
	catalog  store.CatalogStore
	engine   *scoring.Engine
	events   events.Publisher
	validate *validator.Validate
	logger   *slog.Logger
}

func NewService(catalog store.CatalogStore, engine *scoring.Engine, publisher events.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		catalog:  catalog,
		engine:   engine,
		events:   publisher,
		validate: newValidator(),
		logger:   logger,
	}
}

// Recommend returns the top-ranked materials for req. Errors match one of
// ErrValidation, ErrDataUnavailable, scoring.ErrNoMatch or ErrInternal.
func (s *Service) Recommend(ctx context.Context, req Request) (res *Result, err error) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("recommendation panicked", "panic", p)
			res, err = nil, fmt.Errorf("%w: %v", ErrInternal, p)
		}
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
		metrics.RecommendationsTotal.WithLabelValues(outcome(err)).Inc()
	}()

	if verr := s.validate.Struct(req); verr != nil {
		if fields := missingFields(verr); len(fields) > 0 {
			return nil, &ValidationError{Fields: fields}
		}
		return nil, fmt.Errorf("%w: %w", ErrValidation, verr)
	}
	criteria := req.criteria()

	catalog, err := s.catalog.ListMaterials(ctx)
	if err != nil {
		s.logger.Error("catalog read failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	metrics.CatalogSize.Set(float64(len(catalog)))
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, store.ErrEmptyCatalog)
	}

	id := uuid.NewString()
	ranking, err := s.engine.ScoreAndRank(criteria, catalog)
	if err != nil {
		var nm *scoring.NoMatchError
		if errors.As(err, &nm) {
			s.logger.Info("no matching materials",
				"recommendation_id", id,
				"stage", string(nm.Stage),
				"value", nm.Value,
			)
			s.publish(events.SubjectRecommendationNoMatch(id), events.RecommendationNoMatchEvent{
				RecommendationID: id,
				Category:         criteria.Category,
				Fragility:        criteria.Fragility,
				Stage:            string(nm.Stage),
				Timestamp:        time.Now().UTC(),
			})
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if ranking.Degraded {
		metrics.DegradedPredictions.Add(float64(ranking.Candidates))
	}

	names := make([]string, len(ranking.Items))
	for i, item := range ranking.Items {
		names[i] = item.Material.Name
	}
	s.publish(events.SubjectRecommendationGenerated(id), events.RecommendationGeneratedEvent{
		RecommendationID: id,
		Category:         criteria.Category,
		Fragility:        criteria.Fragility,
		ShippingType:     criteria.ShippingType,
		Priority:         criteria.Priority,
		Materials:        names,
		Candidates:       ranking.Candidates,
		Degraded:         ranking.Degraded,
		Timestamp:        time.Now().UTC(),
	})

	s.logger.Info("recommendation generated",
		"recommendation_id", id,
		"category", criteria.Category,
		"priority", criteria.Priority,
		"returned", len(ranking.Items),
		"degraded", ranking.Degraded,
	)

	return &Result{RecommendationID: id, Criteria: criteria, Ranking: ranking}, nil
}

func (s *Service) publish(subject string, v interface{}) {
	if err := s.events.Publish(subject, v); err != nil {
		s.logger.Warn("event publish failed", "subject", subject, "error", err)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, scoring.ErrNoMatch):
		return metrics.OutcomeNoMatch
	case errors.Is(err, ErrDataUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
