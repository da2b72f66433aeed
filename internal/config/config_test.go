package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/catalog-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StatsCacheTTL)
	assert.Equal(t, 1*time.Minute, cfg.Cache.ListCacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("STATS_CACHE_TTL", "60")
	t.Setenv("LIST_CACHE_TTL", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PAGE_DEFAULT_LIMIT", "50")

	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Cache.StatsCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.ListCacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Pagination.DefaultLimit)
}

func TestGetServerAddr(t *testing.T) {
	t.Setenv("API_HOST", "0.0.0.0")
	t.Setenv("API_PORT", "8081")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8081", cfg.GetServerAddr())
}
