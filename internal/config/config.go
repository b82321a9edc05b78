package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Events    EventsConfig    `yaml:"events"`
	Breaker   BreakerConfig   `yaml:"breaker"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port               int      `yaml:"port"`
	MetricsPort        int      `yaml:"metrics_port"`
	CORSOrigins        []string `yaml:"cors_origins"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

// CatalogConfig selects a YAML catalog file instead of Postgres. It is
// used only when no database URL is configured.
type CatalogConfig struct {
	File string `yaml:"file"`
}

type ArtifactsConfig struct {
	Dir    string `yaml:"dir"`
	Scaler string `yaml:"scaler"`
	Model  string `yaml:"model"`
}

// EventsConfig holds the NATS URL. Empty disables event publishing.
type EventsConfig struct {
	URL string `yaml:"url"`
}

type BreakerConfig struct {
	MaxRequests      uint32 `yaml:"max_requests"`
	IntervalMs       int    `yaml:"interval_ms"`
	TimeoutMs        int    `yaml:"timeout_ms"`
	FailureThreshold uint32 `yaml:"failure_threshold"`
}

type ScoringConfig struct {
	TopK          int  `yaml:"top_k"`
	ParetoEnabled bool `yaml:"pareto_enabled"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (b BreakerConfig) Interval() time.Duration {
	return time.Duration(b.IntervalMs) * time.Millisecond
}

func (b BreakerConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutMs) * time.Millisecond
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			CORSOrigins:        []string{"*"},
			RateLimitPerMinute: 120,
		},
		Database: DatabaseConfig{
			MaxConns: 10,
		},
		Artifacts: ArtifactsConfig{
			Dir:    "artifacts",
			Scaler: "scaler.yaml",
			Model:  "co2_model.yaml",
		},
		Breaker: BreakerConfig{
			MaxRequests:      1,
			IntervalMs:       60000,
			TimeoutMs:        30000,
			FailureThreshold: 5,
		},
		Scoring: ScoringConfig{
			TopK: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, a .env file in the working directory if present, and finally the
// environment.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ECOPACK_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ECOPACK_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ECOPACK_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("ECOPACK_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ECOPACK_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("ECOPACK_DATABASE_MAX_CONNS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			cfg.Database.MaxConns = int32(n)
		}
	}
	if v := os.Getenv("ECOPACK_CATALOG_FILE"); v != "" {
		cfg.Catalog.File = v
	}
	if v := os.Getenv("ECOPACK_ARTIFACTS_DIR"); v != "" {
		cfg.Artifacts.Dir = v
	}
	if v := os.Getenv("ECOPACK_SCALER_FILE"); v != "" {
		cfg.Artifacts.Scaler = v
	}
	if v := os.Getenv("ECOPACK_MODEL_FILE"); v != "" {
		cfg.Artifacts.Model = v
	}
	if v := os.Getenv("ECOPACK_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("ECOPACK_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.TopK = n
		}
	}
	if v := os.Getenv("ECOPACK_PARETO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.ParetoEnabled = b
		}
	}
	if v := os.Getenv("ECOPACK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ECOPACK_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
