package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, uint16(0), cfg.Assemble.IOOrigin)
	assert.Equal(t, uint16(16), cfg.Assemble.CodeOrigin)
	assert.Equal(t, uint16(4096), cfg.Assemble.DataOrigin)
	assert.False(t, cfg.Assemble.AllowIncludeEscape)

	assert.Equal(t, 1000000, cfg.Simulate.MaxSteps)
	assert.Equal(t, uint16(8191), cfg.Simulate.StackStart)
	assert.Equal(t, 60, cfg.Simulate.ThrottleHz)

	assert.Equal(t, 1000, cfg.Debugger.HistorySize)
	assert.True(t, cfg.Debugger.ShowSource)

	assert.True(t, cfg.Video.Enabled)
	assert.False(t, cfg.Video.LineDoubling)
}

func TestConfigOrigins(t *testing.T) {
	cfg := DefaultConfig()
	origins := cfg.Origins()
	assert.Equal(t, map[string]uint16{"io": 0, "code": 16, "data": 4096}, origins)
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puc16.toml")

	cfg := DefaultConfig()
	cfg.Simulate.MaxSteps = 5000
	cfg.Debugger.NumberFormat = "hex"
	cfg.Video.LineDoubling = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, loaded.Simulate.MaxSteps)
	assert.Equal(t, "hex", loaded.Debugger.NumberFormat)
	assert.True(t, loaded.Video.LineDoubling)
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps = [not valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
