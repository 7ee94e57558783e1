// Package app opens a window, an OpenGL device and a renderer context from
// one Config.
package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"vgfx/core"
	"vgfx/internal/opengl"
	"vgfx/internal/watch"
	"vgfx/renderer"
	"vgfx/window"
)

// App bundles the window and the rendering context drawing into it.
type App struct {
	*renderer.Context
	Window *window.Window

	device *opengl.Device
	reload *reloader
	closed bool
}

// Open validates cfg, opens the window and creates the context. With
// cfg.HotReload set, shaders loaded through App.LoadShader are recompiled
// at the start of the frame after their files change.
func Open(cfg core.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	win, err := window.Open(cfg.Window)
	if err != nil {
		return nil, err
	}
	dev, err := opengl.New()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("init device: %w", err)
	}
	a := &App{
		Context: renderer.New(dev, win, cfg.Render),
		Window:  win,
		device:  dev,
	}
	if cfg.HotReload {
		w, err := watch.New()
		if err != nil {
			core.Logger().Warn("app: hot reload disabled", "err", err)
		} else {
			a.reload = newReloader(w, a.Context)
		}
	}
	return a, nil
}

// LoadShader loads a shader from files and, with hot reload on, watches
// them.
func (a *App) LoadShader(vertexPath, fragmentPath string) (renderer.ShaderHandle, error) {
	h, err := a.Context.LoadShader(vertexPath, fragmentPath)
	if err != nil {
		return 0, err
	}
	if a.reload != nil {
		a.reload.track(h, vertexPath, fragmentPath)
	}
	return h, nil
}

// BeginFrame recompiles changed shaders, then starts the frame.
func (a *App) BeginFrame() error {
	if a.reload != nil {
		a.reload.poll()
	}
	return a.Context.BeginFrame()
}

// Close releases GPU objects and destroys the window. Closing twice is a
// no-op.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	var errs []error
	if a.reload != nil {
		errs = append(errs, a.reload.close())
		a.reload = nil
	}
	errs = append(errs, a.Context.Close())
	a.device.Destroy()
	a.Window.Destroy()
	return errors.Join(errs...)
}

// shaderReloader is the part of the context the reloader drives.
type shaderReloader interface {
	ReloadShader(h renderer.ShaderHandle) error
}

// reloader maps watched files to the shaders built from them.
type reloader struct {
	w       *watch.Watcher
	ctx     shaderReloader
	shaders map[string][]renderer.ShaderHandle
}

func newReloader(w *watch.Watcher, ctx shaderReloader) *reloader {
	return &reloader{w: w, ctx: ctx, shaders: make(map[string][]renderer.ShaderHandle)}
}

func (r *reloader) track(h renderer.ShaderHandle, paths ...string) {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err == nil {
			err = r.w.Add(abs)
		}
		if err != nil {
			core.Logger().Warn("app: cannot watch shader", "path", p, "err", err)
			continue
		}
		r.shaders[abs] = append(r.shaders[abs], h)
	}
}

// poll reloads each shader whose files changed, once even if both of its
// files did. Failures are logged and the previous program is kept.
func (r *reloader) poll() {
	done := make(map[renderer.ShaderHandle]bool)
	for _, path := range r.w.Changed() {
		for _, h := range r.shaders[path] {
			if done[h] {
				continue
			}
			done[h] = true
			if err := r.ctx.ReloadShader(h); err != nil {
				core.Logger().Error("app: shader reload failed", "shader", h, "err", err)
			}
		}
	}
}

func (r *reloader) close() error { return r.w.Close() }
