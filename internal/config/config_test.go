package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

var envVars = []string{
	"PORT", "DATABASE_URL",
	"ECOPACK_PORT", "ECOPACK_METRICS_PORT", "ECOPACK_CORS_ORIGINS",
	"ECOPACK_RATE_LIMIT_PER_MINUTE", "ECOPACK_DATABASE_URL", "ECOPACK_DATABASE_MAX_CONNS",
	"ECOPACK_CATALOG_FILE", "ECOPACK_ARTIFACTS_DIR", "ECOPACK_SCALER_FILE",
	"ECOPACK_MODEL_FILE", "ECOPACK_NATS_URL", "ECOPACK_TOP_K",
	"ECOPACK_PARETO_ENABLED", "ECOPACK_LOG_LEVEL", "ECOPACK_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"*"}) {
		t.Errorf("expected cors origins [*], got %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected empty database URL, got %s", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("expected max conns 10, got %d", cfg.Database.MaxConns)
	}
	if cfg.Artifacts.Dir != "artifacts" || cfg.Artifacts.Scaler != "scaler.yaml" || cfg.Artifacts.Model != "co2_model.yaml" {
		t.Errorf("unexpected artifacts defaults: %+v", cfg.Artifacts)
	}
	if cfg.Events.URL != "" {
		t.Errorf("expected events disabled by default, got %s", cfg.Events.URL)
	}
	if cfg.Scoring.TopK != 5 {
		t.Errorf("expected top_k 5, got %d", cfg.Scoring.TopK)
	}
	if cfg.Scoring.ParetoEnabled {
		t.Error("expected pareto_enabled=false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	if cfg.Breaker.FailureThreshold != 5 {
		t.Errorf("expected failure threshold 5, got %d", cfg.Breaker.FailureThreshold)
	}
	if cfg.Breaker.Interval() != time.Minute {
		t.Errorf("expected breaker interval 1m, got %v", cfg.Breaker.Interval())
	}
	if cfg.Breaker.Timeout() != 30*time.Second {
		t.Errorf("expected breaker timeout 30s, got %v", cfg.Breaker.Timeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ecopack.yaml")
	data := `
server:
  port: 9100
  cors_origins: ["https://shop.example.com"]
catalog:
  file: materials.yaml
scoring:
  top_k: 3
  pareto_enabled: true
logging:
  format: text
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port to survive, got %d", cfg.Server.MetricsPort)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"https://shop.example.com"}) {
		t.Errorf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Catalog.File != "materials.yaml" {
		t.Errorf("expected catalog file, got %s", cfg.Catalog.File)
	}
	if cfg.Scoring.TopK != 3 || !cfg.Scoring.ParetoEnabled {
		t.Errorf("unexpected scoring config %+v", cfg.Scoring)
	}
	if cfg.Logging.Format != "text" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [port"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ECOPACK_PORT", "9000")
	t.Setenv("ECOPACK_METRICS_PORT", "9001")
	t.Setenv("ECOPACK_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ECOPACK_RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("ECOPACK_DATABASE_URL", "postgres://localhost/ecopack_test")
	t.Setenv("ECOPACK_DATABASE_MAX_CONNS", "4")
	t.Setenv("ECOPACK_ARTIFACTS_DIR", "/srv/models")
	t.Setenv("ECOPACK_NATS_URL", "nats://nats:4222")
	t.Setenv("ECOPACK_TOP_K", "10")
	t.Setenv("ECOPACK_PARETO_ENABLED", "true")
	t.Setenv("ECOPACK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Database.URL != "postgres://localhost/ecopack_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != 4 {
		t.Errorf("expected max conns 4, got %d", cfg.Database.MaxConns)
	}
	if cfg.Artifacts.Dir != "/srv/models" {
		t.Errorf("expected artifacts dir, got '%s'", cfg.Artifacts.Dir)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected nats URL, got '%s'", cfg.Events.URL)
	}
	if cfg.Scoring.TopK != 10 || !cfg.Scoring.ParetoEnabled {
		t.Errorf("unexpected scoring config %+v", cfg.Scoring)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestPlainEnvFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5000")
	t.Setenv("DATABASE_URL", "postgres://plain/db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected PORT fallback 5000, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://plain/db" {
		t.Errorf("expected DATABASE_URL fallback, got %s", cfg.Database.URL)
	}

	t.Setenv("ECOPACK_PORT", "5100")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 5100 {
		t.Errorf("expected ECOPACK_PORT to win, got %d", cfg.Server.Port)
	}
}

func TestInvalidEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("ECOPACK_PORT", "not-a-number")
	t.Setenv("ECOPACK_PARETO_ENABLED", "maybe")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8700 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.ParetoEnabled {
		t.Error("expected pareto to stay disabled")
	}
}
