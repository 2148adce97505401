package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/palette"
)

// Config holds environment-driven settings for the dashboard API.
type Config struct {
	Port                 int
	DatabaseURL          string
	CatalogPath          string
	CatalogChronological bool
	DefaultParameter     argo.Parameter
	Palette              palette.Palette
	BearerToken          string
	LogLevel             logrus.Level
	ChartWidth           int
	ChartHeight          int
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:             8080,
		DefaultParameter: argo.Temperature,
		Palette:          palette.Default,
		LogLevel:         logrus.InfoLevel,
		ChartWidth:       800,
		ChartHeight:      400,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := positiveInt(portStr)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
		cfg.Port = port
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		port, err := positiveInt(portStr)
		if err != nil {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
		cfg.Port = port
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.CatalogPath = strings.TrimSpace(os.Getenv("CATALOG_PATH"))

	if v := strings.TrimSpace(os.Getenv("CATALOG_CHRONOLOGICAL")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CATALOG_CHRONOLOGICAL: %w", err)
		}
		cfg.CatalogChronological = b
	}

	if v := os.Getenv("DEFAULT_PARAMETER"); v != "" {
		p, err := argo.ParseParameter(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid DEFAULT_PARAMETER: %w", err)
		}
		cfg.DefaultParameter = p
	}

	p, err := palette.ParsePalette(os.Getenv("PALETTE"))
	if err != nil {
		return cfg, fmt.Errorf("invalid PALETTE: %w", err)
	}
	cfg.Palette = p

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv("CHART_WIDTH"); v != "" {
		w, err := positiveInt(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CHART_WIDTH: %s", v)
		}
		cfg.ChartWidth = w
	}
	if v := os.Getenv("CHART_HEIGHT"); v != "" {
		h, err := positiveInt(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CHART_HEIGHT: %s", v)
		}
		cfg.ChartHeight = h
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CatalogSource names where the catalog is loaded from.
func (c Config) CatalogSource() string {
	switch {
	case c.DatabaseURL != "":
		return "postgres"
	case c.CatalogPath != "":
		return "file"
	default:
		return "mock"
	}
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}
