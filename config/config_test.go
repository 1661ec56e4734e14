package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, 5, cfg.CacheCapacity)
	assert.Equal(t, 50.0, cfg.SwipeThreshold)
	assert.Equal(t, []string{"jpg", "png", "jpeg"}, cfg.Extensions)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cache_capacity: 2
swipe_threshold: 80
extensions: ["*.PNG", "webp"]
render_mode: blocks
http_timeout: 3s
`), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.CacheCapacity)
	assert.Equal(t, 80.0, cfg.SwipeThreshold)
	assert.Equal(t, []string{"png", "webp"}, cfg.Extensions)
	assert.Equal(t, "blocks", cfg.RenderMode)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_capacity: 2\n"), 0o644))
	t.Setenv("SOLARGALLERY_CACHE_CAPACITY", "9")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.CacheCapacity)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.CacheCapacity = 3
	cfg.RenderMode = "kitty"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "render mode", mutate: func(c *Config) { c.RenderMode = "sixel" }},
		{name: "capacity", mutate: func(c *Config) { c.CacheCapacity = 0 }},
		{name: "threshold", mutate: func(c *Config) { c.SwipeThreshold = -1 }},
		{name: "extensions", mutate: func(c *Config) { c.Extensions = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}
