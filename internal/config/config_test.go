package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 20, cfg.DBPoolSize)
	assert.Equal(t, 5, cfg.RecommendLimitDefault)
	assert.Equal(t, 20, cfg.RecommendLimitMax)
	assert.Equal(t, "weighted", cfg.RecommendStrategyDefault)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.InDelta(t, 0.4, cfg.RecommendWeightUser, 1e-9)
	assert.InDelta(t, 0.6, cfg.RecommendWeightPopular, 1e-9)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RECOMMEND_LIMIT_DEFAULT", "7")
	t.Setenv("RECOMMEND_STRATEGY_DEFAULT", "popular")
	t.Setenv("RECOMMEND_CACHE_SECONDS", "60")
	t.Setenv("RECOMMEND_WEIGHT_USER", "0.3")
	t.Setenv("RECOMMEND_WEIGHT_POPULAR", "0.7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 7, cfg.RecommendLimitDefault)
	assert.Equal(t, "popular", cfg.RecommendStrategyDefault)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
	assert.InDelta(t, 0.3, cfg.RecommendWeightUser, 1e-9)
	assert.InDelta(t, 0.7, cfg.RecommendWeightPopular, 1e-9)

	assert.Equal(t, 20, cfg.RecommendLimitMax, "untouched knobs keep their defaults")
}
