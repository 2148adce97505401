package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/palette"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "API_PORT", "DATABASE_URL", "CATALOG_PATH", "CATALOG_CHRONOLOGICAL",
		"DEFAULT_PARAMETER", "PALETTE", "API_BEARER_TOKEN", "LOG_LEVEL", "CHART_WIDTH", "CHART_HEIGHT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, argo.Temperature, cfg.DefaultParameter)
	assert.Equal(t, palette.Default, cfg.Palette)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "mock", cfg.CatalogSource())
	assert.False(t, cfg.CatalogChronological)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("CATALOG_PATH", "/data/floats.json")
	t.Setenv("CATALOG_CHRONOLOGICAL", "true")
	t.Setenv("DEFAULT_PARAMETER", "psal")
	t.Setenv("PALETTE", "#111111,#222222")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHART_WIDTH", "1024")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file", cfg.CatalogSource())
	assert.True(t, cfg.CatalogChronological)
	assert.Equal(t, argo.Salinity, cfg.DefaultParameter)
	assert.Equal(t, palette.Palette{"#111111", "#222222"}, cfg.Palette)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 1024, cfg.ChartWidth)
	assert.Equal(t, 400, cfg.ChartHeight)

	t.Setenv("DATABASE_URL", "postgres://localhost/floatchat")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.CatalogSource())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                  "-1",
		"DEFAULT_PARAMETER":     "DOXY",
		"PALETTE":               "blue",
		"LOG_LEVEL":             "loud",
		"CATALOG_CHRONOLOGICAL": "sometimes",
		"CHART_HEIGHT":          "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
