package renderer

import (
	"errors"

	"vgfx/arena"
	"vgfx/core"
	"vgfx/scene"
)

// Lights live in fixed registries of MaxDirectLights, MaxPointLights and
// MaxFlashLights slots. A handle is its slot index. Every slot is uploaded
// each time frame uniforms are pushed, so slots never created read as zero
// (black) lights in the shader. Setting a light marks the frame uniforms
// stale; the next draw pushes the new values.

func createLight[T any](c *Context, a *arena.Arena[T], kind string) (LightHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	h, err := a.Bump()
	if errors.Is(err, arena.ErrFull) {
		return 0, &CapacityError{Kind: kind, Capacity: a.Cap()}
	}
	if err != nil {
		return 0, err
	}
	core.Logger().Debug("renderer: light created", "kind", kind, "handle", h)
	return LightHandle(h), nil
}

func getLight[T any](c *Context, a *arena.Arena[T], kind string, h LightHandle) (T, error) {
	if err := c.checkOpen(); err != nil {
		var zero T
		return zero, err
	}
	l, err := a.Get(arena.Handle(h))
	if err != nil {
		return l, handleErr(kind+" light", arena.Handle(h), err)
	}
	return l, nil
}

func setLight[T any](c *Context, a *arena.Arena[T], kind string, h LightHandle, l T) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := a.Set(arena.Handle(h), l); err != nil {
		return handleErr(kind+" light", arena.Handle(h), err)
	}
	c.invalidate()
	return nil
}

func (c *Context) CreateDirectLight() (LightHandle, error) {
	return createLight(c, c.directLights, "direct")
}

func (c *Context) CreatePointLight() (LightHandle, error) {
	return createLight(c, c.pointLights, "point")
}

func (c *Context) CreateFlashLight() (LightHandle, error) {
	return createLight(c, c.flashLights, "flash")
}

func (c *Context) DirectLight(h LightHandle) (scene.DirectLight, error) {
	return getLight(c, c.directLights, "direct", h)
}

func (c *Context) PointLight(h LightHandle) (scene.PointLight, error) {
	return getLight(c, c.pointLights, "point", h)
}

func (c *Context) FlashLight(h LightHandle) (scene.FlashLight, error) {
	return getLight(c, c.flashLights, "flash", h)
}

func (c *Context) SetDirectLight(h LightHandle, l scene.DirectLight) error {
	return setLight(c, c.directLights, "direct", h, l)
}

func (c *Context) SetPointLight(h LightHandle, l scene.PointLight) error {
	return setLight(c, c.pointLights, "point", h, l)
}

func (c *Context) SetFlashLight(h LightHandle, l scene.FlashLight) error {
	return setLight(c, c.flashLights, "flash", h, l)
}
