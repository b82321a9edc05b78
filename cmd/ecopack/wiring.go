package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/MikeSquared-Agency/EcoPack/internal/config"
	"github.com/MikeSquared-Agency/EcoPack/internal/emission"
	"github.com/MikeSquared-Agency/EcoPack/internal/scoring"
	"github.com/MikeSquared-Agency/EcoPack/internal/store"
)

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Format) == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// openCatalog prefers Postgres and falls back to the YAML catalog file. The
// returned store is wrapped in a circuit breaker.
func openCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.CatalogStore, error) {
	var backing store.CatalogStore
	switch {
	case cfg.Database.URL != "":
		db, err := store.NewPostgresStore(ctx, cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to database")
		backing = db
	case cfg.Catalog.File != "":
		logger.Info("using catalog file", "path", cfg.Catalog.File)
		backing = store.NewFileStore(cfg.Catalog.File)
	default:
		return nil, fmt.Errorf("no catalog configured: set database.url or catalog.file")
	}

	return store.NewBreakerStore(backing, store.BreakerSettings{
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval(),
		Timeout:          cfg.Breaker.Timeout(),
		FailureThreshold: cfg.Breaker.FailureThreshold,
	}, logger), nil
}

func loadPredictor(cfg config.ArtifactsConfig, logger *slog.Logger) (*emission.Predictor, error) {
	artifacts, err := emission.LoadArtifacts(cfg.Dir, cfg.Scaler, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("load co2 artifacts: %w", err)
	}
	p := emission.NewPredictor(artifacts, logger)
	if p.Degraded() {
		logger.Warn("co2 model running in degraded mode",
			"dir", cfg.Dir,
			"missing", p.MissingArtifacts(),
		)
	} else {
		logger.Info("co2 model loaded", "version", p.ModelVersion())
	}
	return p, nil
}

func newEngine(cfg config.ScoringConfig, p *emission.Predictor, logger *slog.Logger) *scoring.Engine {
	return scoring.NewEngine(p, scoring.Options{
		TopK:          cfg.TopK,
		ParetoEnabled: cfg.ParetoEnabled,
	}, logger)
}
