package renderer

import (
	"vgfx/core"
)

// BeginFrame starts a frame. In order it clears last frame's key presses
// and mouse delta, polls input, closes the window on Escape when so
// configured, rebuilds the view and projection from the camera and the
// framebuffer size, clears to the background color and advances the clock.
func (c *Context) BeginFrame() error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if c.inFrame {
		return ErrFrameInProgress
	}

	c.plat.ResetInput()
	c.plat.PollEvents()
	if c.cfg.CloseOnEscape && c.plat.KeyDown(core.KeyEscape) {
		c.plat.SetShouldClose(true)
	}

	if w, h := c.plat.FramebufferSize(); w != c.width || h != c.height {
		c.width, c.height = w, h
		c.dev.Viewport(w, h)
		core.Logger().Debug("renderer: viewport resized", "width", w, "height", h)
	}
	c.eye = c.camera.Position
	c.view = c.camera.GetViewMatrix()
	c.projection = c.camera.GetProjectionMatrix(c.width, c.height)

	c.dev.Clear(c.background)
	c.previousTime = c.currentTime
	c.currentTime = c.plat.Time()

	c.invalidate()
	c.inFrame = true
	return nil
}

// EndFrame presents the back buffer. It may block on vertical sync.
func (c *Context) EndFrame() error {
	if err := c.checkDraw(); err != nil {
		return err
	}
	c.plat.SwapBuffers()
	c.inFrame = false
	return nil
}

// InFrame reports whether BeginFrame has been called without EndFrame.
func (c *Context) InFrame() bool { return c.inFrame }

// ShouldClose reports whether the window was asked to close.
func (c *Context) ShouldClose() bool { return c.plat.ShouldClose() }

// Time is the platform clock sampled at the last BeginFrame, in seconds.
func (c *Context) Time() float64 { return c.currentTime }

// DeltaTime is the time between the last two BeginFrame calls. It is 0 for
// the first frame.
func (c *Context) DeltaTime() float64 { return c.currentTime - c.previousTime }

// FPS is 1/DeltaTime, or 0 when no time has passed.
func (c *Context) FPS() float64 {
	dt := c.DeltaTime()
	if dt <= 0 {
		return 0
	}
	return 1 / dt
}

// Size is the framebuffer size seen at the last BeginFrame.
func (c *Context) Size() (width, height int) { return c.width, c.height }

func (c *Context) Background() core.Color { return c.background }

// SetBackground sets the color BeginFrame clears to.
func (c *Context) SetBackground(col core.Color) { c.background = col }

// Clear fills the color and depth buffers immediately.
func (c *Context) Clear(col core.Color) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	c.dev.Clear(col)
	return nil
}

// ClearBackground clears to the background color.
func (c *Context) ClearBackground() error {
	return c.Clear(c.background)
}
