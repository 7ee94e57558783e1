package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(math32.Pi/2), cfg.Render.FOV)
	assert.Equal(t, float32(0.1), cfg.Render.Near)
	assert.Equal(t, float32(100), cfg.Render.Far)
	assert.False(t, cfg.Window.VSync)
	assert.True(t, cfg.Render.CloseOnEscape)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "vgfx.yaml", `
window:
  title: "Example: Meshes"
  width: 720
  height: 720
render:
  background: "#ff8000"
  far: 250
log_level: debug
hot_reload: true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Example: Meshes", cfg.Window.Title)
	assert.Equal(t, 720, cfg.Window.Width)
	assert.Equal(t, float32(250), cfg.Render.Far)
	assert.Equal(t, float32(0.1), cfg.Render.Near, "unset fields keep defaults")
	assert.InDelta(t, 1.0, cfg.Render.Background.R, 1e-6)
	assert.InDelta(t, 128.0/255, cfg.Render.Background.G, 1e-6)
	assert.Equal(t, float32(1), cfg.Render.Background.A)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HotReload)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "vgfx.toml", `
log_level = "warn"

[window]
title = "toml"
vsync = true

[render]
model_capacity = 8
background = { r = 0.0, g = 0.0, b = 1.0, a = 1.0 }
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 8, cfg.Render.ModelCapacity)
	assert.Equal(t, ColorBlue, cfg.Render.Background)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "bad.yaml", "window: [1, 2"))
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadConfig(writeConfig(t, "invalid.yaml", "render:\n  near: 10\n  far: 1\nlog_level: loud\n"))
	assert.ErrorContains(t, err, "near < far")
	assert.ErrorContains(t, err, "loud")
}

func TestColorYAMLMapping(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "c.yaml", "render:\n  background: {r: 0.5, g: 0.25, b: 0}\n"))
	require.NoError(t, err)
	assert.Equal(t, Color{0.5, 0.25, 0, 1}, cfg.Render.Background, "alpha defaults to opaque")
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#00ff0080")
	require.NoError(t, err)
	assert.Equal(t, float32(0), c.R)
	assert.Equal(t, float32(1), c.G)
	assert.InDelta(t, 128.0/255, c.A, 1e-6)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, ColorWhite, c)

	_, err = ParseHex("orange")
	assert.Error(t, err)
	_, err = ParseHex("#000000zz")
	assert.Error(t, err)

	assert.Equal(t, "#ff0000ff", ColorRed.Hex())
}

func TestColorHSV(t *testing.T) {
	assert.Equal(t, ColorRed, ColorHSV(0, 1, 1))
	c := ColorHSV(120, 1, 1)
	assert.InDelta(t, 1.0, c.G, 1e-6)
	assert.InDelta(t, 0.0, c.R, 1e-6)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"", "info", "DEBUG", "warning", "error"} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
