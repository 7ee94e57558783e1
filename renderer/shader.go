package renderer

import (
	"errors"
	"fmt"
	"os"

	"vgfx/arena"
	"vgfx/core"
)

// ErrNoShaderFiles is returned when reloading a shader that was not loaded
// from files.
var ErrNoShaderFiles = errors.New("shader was not loaded from files")

// LoadShader reads GLSL vertex and fragment sources from disk, compiles
// them and links a program. Compile and link errors carry the driver log.
func (c *Context) LoadShader(vertexPath, fragmentPath string) (ShaderHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("read fragment shader: %w", err)
	}
	h, err := c.LoadShaderSource(string(vs), string(fs))
	if err != nil {
		return 0, fmt.Errorf("shader %s + %s: %w", vertexPath, fragmentPath, err)
	}
	err = c.shaders.Update(arena.Handle(h), func(s *shader) {
		s.vertexPath, s.fragmentPath = vertexPath, fragmentPath
	})
	if err != nil {
		return 0, err
	}
	return h, nil
}

// LoadShaderSource compiles and links in-memory GLSL.
func (c *Context) LoadShaderSource(vertexSrc, fragmentSrc string) (ShaderHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	prog, err := c.dev.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	h, err := c.shaders.Bump()
	if err != nil {
		c.dev.DeleteProgram(prog)
		return 0, err
	}
	if err := c.shaders.Set(h, shader{program: prog, locations: make(map[string]int32)}); err != nil {
		c.dev.DeleteProgram(prog)
		return 0, err
	}
	core.Logger().Debug("renderer: shader linked", "handle", h, "program", prog)
	return ShaderHandle(h), nil
}

// builtinShader compiles one of the embedded programs the first time it is
// needed and caches its handle in *slot.
func (c *Context) builtinShader(slot *ShaderHandle, name, vertexSrc, fragmentSrc string) (ShaderHandle, error) {
	if *slot != 0 {
		return *slot, nil
	}
	h, err := c.LoadShaderSource(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("built-in %s shader: %w", name, err)
	}
	*slot = h
	return h, nil
}

// ShaderFiles returns the paths h was loaded from, empty for shaders built
// from in-memory source.
func (c *Context) ShaderFiles(h ShaderHandle) (vertexPath, fragmentPath string, err error) {
	if err := c.checkOpen(); err != nil {
		return "", "", err
	}
	s, err := c.shaders.Get(arena.Handle(h))
	if err != nil {
		return "", "", handleErr("shader", arena.Handle(h), err)
	}
	return s.vertexPath, s.fragmentPath, nil
}

// ReloadShader recompiles h from its files and swaps the new program in
// under the same handle. On failure the old program stays in use.
func (c *Context) ReloadShader(h ShaderHandle) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	old, err := c.shaders.Get(arena.Handle(h))
	if err != nil {
		return handleErr("shader", arena.Handle(h), err)
	}
	if old.vertexPath == "" {
		return handleErr("shader", arena.Handle(h), ErrNoShaderFiles)
	}
	vs, err := os.ReadFile(old.vertexPath)
	if err != nil {
		return fmt.Errorf("read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(old.fragmentPath)
	if err != nil {
		return fmt.Errorf("read fragment shader: %w", err)
	}
	prog, err := c.dev.CompileProgram(string(vs), string(fs))
	if err != nil {
		return fmt.Errorf("shader %s + %s: %w", old.vertexPath, old.fragmentPath, err)
	}

	err = c.shaders.Update(arena.Handle(h), func(s *shader) {
		s.program = prog
		s.locations = make(map[string]int32)
	})
	if err != nil {
		c.dev.DeleteProgram(prog)
		return handleErr("shader", arena.Handle(h), err)
	}
	c.dev.DeleteProgram(old.program)
	if c.bind.shader == h {
		// Force the next use to bind the new program and push to it.
		c.bind.shader = 0
	}
	core.Logger().Info("renderer: shader reloaded", "handle", h, "program", prog)
	return nil
}
