package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/EcoPack/internal/api"
	"github.com/MikeSquared-Agency/EcoPack/internal/config"
	"github.com/MikeSquared-Agency/EcoPack/internal/events"
	"github.com/MikeSquared-Agency/EcoPack/internal/recommend"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API and metrics servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(parent context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	predictor, err := loadPredictor(cfg.Artifacts, logger)
	if err != nil {
		logger.Error("failed to load artifacts", "error", err)
		return err
	}

	catalog, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open catalog", "error", err)
		return err
	}
	defer catalog.Close()

	// Events (optional)
	var publisher events.Publisher = events.Nop{}
	if cfg.Events.URL != "" {
		nc, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to nats, running without events", "error", err)
		} else {
			publisher = nc
			defer nc.Close()
			logger.Info("connected to nats", "stream", events.StreamName)
		}
	}
	if predictor.Degraded() {
		if err := publisher.Publish(events.SubjectModelDegraded, events.ModelDegradedEvent{
			MissingArtifacts: predictor.MissingArtifacts(),
			Timestamp:        time.Now().UTC(),
		}); err != nil {
			logger.Warn("event publish failed", "subject", events.SubjectModelDegraded, "error", err)
		}
	}

	svc := recommend.NewService(catalog, newEngine(cfg.Scoring, predictor, logger), publisher, logger)

	router := api.NewRouter(svc, catalog, predictor, api.RouterOptions{
		CORSOrigins:        cfg.Server.CORSOrigins,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	}, logger)
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           api.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()
	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error("server failed", "error", err)
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
	return err
}
