package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/arena"
	"vgfx/core"
)

// Uniform setters write to the active shader by name. A name the program
// does not expose (misspelt, or optimized out by the driver) is a silent
// no-op, as is any call while no shader is active.

func (c *Context) SetInt(name string, v int32) {
	if loc := c.location(name); loc >= 0 {
		c.dev.Uniform1i(loc, v)
	}
}

func (c *Context) SetFloat(name string, v float32) {
	if loc := c.location(name); loc >= 0 {
		c.dev.Uniform1f(loc, v)
	}
}

func (c *Context) SetVec3(name string, v mgl32.Vec3) {
	if loc := c.location(name); loc >= 0 {
		c.dev.Uniform3f(loc, v)
	}
}

func (c *Context) SetVec4(name string, v mgl32.Vec4) {
	if loc := c.location(name); loc >= 0 {
		c.dev.Uniform4f(loc, v)
	}
}

func (c *Context) SetMat4(name string, m mgl32.Mat4) {
	if loc := c.location(name); loc >= 0 {
		c.dev.UniformMatrix4(loc, m)
	}
}

// location resolves name against the active program, asking the device
// only the first time each name is seen.
func (c *Context) location(name string) int32 {
	if c.bind.shader == 0 {
		return -1
	}
	loc := int32(-1)
	// bind.shader is only ever set to a live handle.
	_ = c.shaders.Update(arena.Handle(c.bind.shader), func(s *shader) {
		if l, ok := s.locations[name]; ok {
			loc = l
			return
		}
		loc = c.dev.UniformLocation(s.program, name)
		s.locations[name] = loc
		if loc < 0 {
			core.Logger().Debug("renderer: uniform not found", "shader", c.bind.shader, "name", name)
		}
	})
	return loc
}
