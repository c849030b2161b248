package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("MAPBOX_TOKEN", "")

	cfg := Load("does-not-exist.env")

	assert.Equal(t, SERVER_PORT, cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, "", cfg.MapboxToken)
	assert.Equal(t, time.Duration(FILTER_CACHE_TTL_MINUTES)*time.Minute, cfg.CacheTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3233")
	t.Setenv("ENV", "prod")
	t.Setenv("MAPBOX_TOKEN", "pk.test")
	t.Setenv("LOG_COLOR", "false")

	cfg := Load("does-not-exist.env")

	assert.Equal(t, 3233, cfg.Port)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "pk.test", cfg.MapboxToken)
	assert.False(t, cfg.LogColor)
}

func TestLoad_BadIntFallsBackToDefault(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	cfg := Load("does-not-exist.env")

	assert.Equal(t, REDIS_DB, cfg.RedisDB)
}
