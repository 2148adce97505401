package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultRequestTimeout     = 30 * time.Second
	defaultFillValueThreshold = 99999
)

// Config holds runtime configuration for the ingest job.
type Config struct {
	DatabaseURL        string
	Source             string
	RequestTimeout     time.Duration
	FillValueThreshold float64
	DryRun             bool
	LogLevel           logrus.Level
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{LogLevel: logrus.InfoLevel}

	dryRun := strings.TrimSpace(os.Getenv("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" && !cfg.DryRun {
		return cfg, errors.New("DATABASE_URL is required")
	}

	cfg.Source = strings.TrimSpace(os.Getenv("INGEST_SOURCE"))
	if cfg.Source == "" {
		return cfg, errors.New("INGEST_SOURCE is required")
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if v := strings.TrimSpace(os.Getenv("INGEST_REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid INGEST_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	cfg.FillValueThreshold = defaultFillValueThreshold
	if v := strings.TrimSpace(os.Getenv("INGEST_FILL_VALUE_THRESHOLD")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid INGEST_FILL_VALUE_THRESHOLD: %w", err)
		}
		if f <= 0 {
			return cfg, fmt.Errorf("invalid INGEST_FILL_VALUE_THRESHOLD: must be positive")
		}
		cfg.FillValueThreshold = f
	}

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
