package app

import (
	"errors"
	"log/slog"
	"os"

	"vgfx/core"
)

// LoadConfig loads path, falling back to core.DefaultConfig when path is
// empty or does not exist.
func LoadConfig(path string) (core.Config, error) {
	if path == "" {
		return core.DefaultConfig(), nil
	}
	cfg, err := core.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return core.DefaultConfig(), nil
	}
	return cfg, err
}

// UseTextLogger sends library and program logs to stderr at cfg.LogLevel.
func UseTextLogger(cfg core.Config) {
	level, err := core.ParseLevel(cfg.LogLevel)
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err != nil {
		l.Warn("app: bad log level, using info", "err", err)
	}
	core.SetLogger(l)
	slog.SetDefault(l)
}
