package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.SuggestionsTTL)
	assert.Equal(t, []string{"places"}, cfg.Map.Libraries)
	assert.Equal(t, 40.738810, cfg.Map.DefaultLat)
	assert.Equal(t, -73.878380, cfg.Map.DefaultLng)
	assert.Equal(t, 8, cfg.Map.DefaultZoom)
	assert.Equal(t, "https://api.mapbox.com", cfg.Mapbox.BaseURL)
	assert.Equal(t, 200000.0, cfg.Search.BiasRadius)
}

func TestLoad_FromEnvironment(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	t.Setenv("API_PORT", "9090")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("SEARCH_CACHE_TTL", "30")
	t.Setenv("MAP_LIBRARIES", "places, geometry")
	t.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test")
	t.Setenv("MAP_DEFAULT_ZOOM", "11")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.SuggestionsTTL)
	assert.Equal(t, []string{"places", "geometry"}, cfg.Map.Libraries)
	assert.Equal(t, "pk.test", cfg.Mapbox.AccessToken)
	assert.Equal(t, 11, cfg.Map.DefaultZoom)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"a", "b"}, parseList(" a ,, b "))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
