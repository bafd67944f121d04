// Package config loads service configuration from an optional YAML file
// with environment-variable overrides. The loaded Config is returned by
// value and injected by the composition root; nothing reads it as ambient
// package state.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Routing RoutingConfig `yaml:"routing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Explain ExplainConfig `yaml:"explain"`
}

type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" validate:"required"`
	Database string `yaml:"database" validate:"required"`
}

type RoutingConfig struct {
	BaseURL      string  `yaml:"base_url" validate:"required,url"`
	Profile      string  `yaml:"profile" validate:"required"`
	TargetCount  int     `yaml:"target_count" validate:"gt=0,lte=10"`
	WeightFactor float64 `yaml:"weight_factor" validate:"gt=0"`
	ShareFactor  float64 `yaml:"share_factor" validate:"gt=0"`
}

type ScoringConfig struct {
	RadiusMeters          float64 `yaml:"radius_meters" validate:"gt=0"`
	SampleStride          int     `yaml:"sample_stride" validate:"gt=0"`
	CriticalWindowMinutes int     `yaml:"critical_window_minutes" validate:"gt=0"`
}

type ExplainConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gt=0"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "wayfinders",
		},
		Routing: RoutingConfig{
			BaseURL:      "https://api.openrouteservice.org",
			Profile:      "foot-walking",
			TargetCount:  3,
			WeightFactor: 1.5,
			ShareFactor:  0.6,
		},
		Scoring: ScoringConfig{
			RadiusMeters:          50,
			SampleStride:          10,
			CriticalWindowMinutes: 15,
		},
		Explain: ExplainConfig{
			Model:          "claude-haiku-4-5-20251001",
			TimeoutSeconds: 20,
		},
	}
}

// Load merges defaults, the YAML file at path (if it exists) and env
// overrides, then validates the result. A missing file is not an error;
// a malformed one is.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Env-only deployment.
	default:
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}

	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if p := os.Getenv("PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.Server.Port = port
		}
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		cfg.Server.AllowedOrigins = cfg.Server.AllowedOrigins[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, p)
			}
		}
	}
	if uri := os.Getenv("MONGO_DATABASE_URL"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if name := os.Getenv("MONGO_DB_NAME"); name != "" {
		cfg.Mongo.Database = name
	}
	if base := os.Getenv("ORS_BASE_URL"); base != "" {
		cfg.Routing.BaseURL = base
	}
}
