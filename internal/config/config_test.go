package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Empty(t, cfg.ResourceState)
	assert.Empty(t, cfg.Params)
	assert.True(t, cfg.JSONNames)
	assert.True(t, cfg.Omitempty)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PATHFLAT_LOG_LEVEL", "DEBUG")
	t.Setenv("PATHFLAT_RESOURCE_STATE", "StoreState")
	t.Setenv("PATHFLAT_CACHE_SIZE", "7")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "StoreState", cfg.ResourceState)
	assert.Equal(t, 7, cfg.CacheSize)
}

func TestLoad_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--log-format=json", "--params=RouteParams", "--json-names=false"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "RouteParams", cfg.Params)
	assert.False(t, cfg.JSONNames)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathflat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\ncache_size: 3\nresource_state: State\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--cache-size=9"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 9, cfg.CacheSize)
	assert.Equal(t, "State", cfg.ResourceState)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("PATHFLAT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PATHFLAT_LOG_LEVEL", "loud")

	_, err := Load(nil)
	assert.Error(t, err)

	t.Setenv("PATHFLAT_LOG_LEVEL", "info")
	t.Setenv("PATHFLAT_CACHE_SIZE", "0")

	_, err = Load(nil)
	assert.Error(t, err)
}
