package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WindowConfig controls the native window and GL context.
type WindowConfig struct {
	Title          string `yaml:"title" toml:"title"`
	Width          int    `yaml:"width" toml:"width"`
	Height         int    `yaml:"height" toml:"height"`
	Resizable      bool   `yaml:"resizable" toml:"resizable"`
	VSync          bool   `yaml:"vsync" toml:"vsync"`
	CursorDisabled bool   `yaml:"cursor_disabled" toml:"cursor_disabled"`
	GLMajor        int    `yaml:"gl_major" toml:"gl_major"`
	GLMinor        int    `yaml:"gl_minor" toml:"gl_minor"`
}

// RenderConfig controls the renderer context.
type RenderConfig struct {
	Background      Color   `yaml:"background" toml:"background"`
	FOV             float32 `yaml:"fov" toml:"fov"`
	Near            float32 `yaml:"near" toml:"near"`
	Far             float32 `yaml:"far" toml:"far"`
	ModelCapacity   int     `yaml:"model_capacity" toml:"model_capacity"`
	TextureCapacity int     `yaml:"texture_capacity" toml:"texture_capacity"`
	ShaderCapacity  int     `yaml:"shader_capacity" toml:"shader_capacity"`
	CloseOnEscape   bool    `yaml:"close_on_escape" toml:"close_on_escape"`
}

// Config is the full library configuration. It can be loaded from YAML:
//
//	window:
//	  title: "Example: Meshes"
//	  width: 720
//	  height: 720
//	render:
//	  background: "#000000"
//	  fov: 1.5707964
//	log_level: debug
//	hot_reload: true
//
// HotReload asks programs to recompile shaders when their files change.
type Config struct {
	Window    WindowConfig `yaml:"window" toml:"window"`
	Render    RenderConfig `yaml:"render" toml:"render"`
	LogLevel  string       `yaml:"log_level" toml:"log_level"`
	HotReload bool         `yaml:"hot_reload" toml:"hot_reload"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:          "vgfx",
			Width:          1280,
			Height:         720,
			Resizable:      true,
			VSync:          false,
			CursorDisabled: true,
			GLMajor:        4,
			GLMinor:        1,
		},
		Render: RenderConfig{
			Background:      ColorBlack,
			FOV:             math32.Pi / 2,
			Near:            0.1,
			Far:             100,
			ModelCapacity:   64,
			TextureCapacity: 64,
			ShaderCapacity:  16,
			CloseOnEscape:   true,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML or, for a .toml extension, TOML file over
// DefaultConfig and validates the result. A leading ~ in path is expanded.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Render.FOV <= 0 || c.Render.FOV >= math32.Pi {
		errs = append(errs, fmt.Errorf("fov must be in (0, pi), got %v", c.Render.FOV))
	}
	if c.Render.Near <= 0 || c.Render.Near >= c.Render.Far {
		errs = append(errs, fmt.Errorf("clip planes must satisfy 0 < near < far, got %v/%v", c.Render.Near, c.Render.Far))
	}
	if c.Render.ModelCapacity < 1 || c.Render.TextureCapacity < 1 || c.Render.ShaderCapacity < 1 {
		errs = append(errs, errors.New("arena capacities must be at least 1"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps a config log level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
