package renderer

import (
	"fmt"

	"vgfx/arena"
)

// binding memoizes the active program and texture. stale is set whenever a
// per-frame uniform (view, projection, camera position, any light) changed
// after it was last pushed to the active program.
type binding struct {
	shader       ShaderHandle
	texture      TextureHandle
	textureBound bool
	stale        bool
}

type directLightNames struct{ direction, color string }
type pointLightNames struct{ position, color string }
type flashLightNames struct{ position, direction, color, angle, cutoff string }

var (
	directUniforms [MaxDirectLights]directLightNames
	pointUniforms  [MaxPointLights]pointLightNames
	flashUniforms  [MaxFlashLights]flashLightNames
)

func init() {
	for i := range directUniforms {
		directUniforms[i] = directLightNames{
			direction: fmt.Sprintf("directLights[%d].direction", i),
			color:     fmt.Sprintf("directLights[%d].color", i),
		}
	}
	for i := range pointUniforms {
		pointUniforms[i] = pointLightNames{
			position: fmt.Sprintf("pointLights[%d].position", i),
			color:    fmt.Sprintf("pointLights[%d].color", i),
		}
	}
	for i := range flashUniforms {
		flashUniforms[i] = flashLightNames{
			position:  fmt.Sprintf("flashLights[%d].position", i),
			direction: fmt.Sprintf("flashLights[%d].direction", i),
			color:     fmt.Sprintf("flashLights[%d].color", i),
			angle:     fmt.Sprintf("flashLights[%d].angle", i),
			cutoff:    fmt.Sprintf("flashLights[%d].cutoff", i),
		}
	}
}

// UseShader activates h. Activating a different program binds it and
// pushes the per-frame uniforms to it. Activating the current program
// again does nothing unless those uniforms went stale in between, in which
// case they are pushed without rebinding.
func (c *Context) UseShader(h ShaderHandle) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return c.useShader(h)
}

func (c *Context) useShader(h ShaderHandle) error {
	if h != 0 && h == c.bind.shader {
		if c.bind.stale {
			c.pushFrameUniforms()
		}
		return nil
	}
	s, err := c.shaders.Get(arena.Handle(h))
	if err != nil {
		return handleErr("shader", arena.Handle(h), err)
	}
	c.dev.UseProgram(s.program)
	c.bind.shader = h
	c.pushFrameUniforms()
	return nil
}

// CurrentShader is the active shader, 0 before the first UseShader.
func (c *Context) CurrentShader() ShaderHandle { return c.bind.shader }

// UseTexture binds h to texture unit 0. Handle 0 binds the built-in white
// texture; the draw path substitutes the default texture before calling
// this.
func (c *Context) UseTexture(h TextureHandle) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return c.useTexture(h)
}

func (c *Context) useTexture(h TextureHandle) error {
	if c.bind.textureBound && h == c.bind.texture {
		return nil
	}
	id, err := c.textureID(h)
	if err != nil {
		return err
	}
	c.dev.BindTexture(0, id)
	c.SetInt("main_texture", 0)
	c.bind.texture = h
	c.bind.textureBound = true
	return nil
}

// invalidate marks the per-frame uniforms stale so the next draw re-pushes.
func (c *Context) invalidate() { c.bind.stale = true }

// pushFrameUniforms uploads view, projection, camera position and every
// light slot, used or not, to the active program.
func (c *Context) pushFrameUniforms() {
	c.SetMat4("view", c.view)
	c.SetMat4("projection", c.projection)
	c.SetVec3("cameraPos", c.eye)
	c.SetInt("main_texture", 0)

	for i := 0; i < c.directLights.Cap(); i++ {
		l := c.directLights.At(i)
		c.SetVec3(directUniforms[i].direction, l.Direction)
		c.SetVec3(directUniforms[i].color, l.Color)
	}
	for i := 0; i < c.pointLights.Cap(); i++ {
		l := c.pointLights.At(i)
		c.SetVec3(pointUniforms[i].position, l.Position)
		c.SetVec3(pointUniforms[i].color, l.Color)
	}
	for i := 0; i < c.flashLights.Cap(); i++ {
		l := c.flashLights.At(i)
		n := flashUniforms[i]
		c.SetVec3(n.position, l.Position)
		c.SetVec3(n.direction, l.Direction)
		c.SetVec3(n.color, l.Color)
		c.SetFloat(n.angle, l.Angle)
		c.SetFloat(n.cutoff, l.Cutoff)
	}
	c.bind.stale = false
}
