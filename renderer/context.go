// Package renderer is an immediate-mode drawing context over a GPU Device
// and a window Platform.
//
// A Context owns handle arenas for models, textures and shaders, a fixed
// light registry, the camera, and a binding tracker that skips redundant
// shader and texture binds. Each frame is bracketed by BeginFrame and
// EndFrame; per-frame uniforms (view, projection, camera position, lights)
// are pushed lazily to whichever shader the next draw activates.
//
// A Context is not safe for concurrent use. Like the graphics context it
// drives, it belongs to one goroutine, normally the main one.
package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"vgfx/arena"
	"vgfx/core"
	"vgfx/scene"
)

// Light registry capacities. Slot 0 of each is reserved, so one fewer light
// of each kind can be created.
const (
	MaxDirectLights = 8
	MaxPointLights  = 8
	MaxFlashLights  = 2
)

// Context is the rendering state for one window.
type Context struct {
	dev  Device
	plat Platform
	cfg  core.RenderConfig

	models   *arena.Arena[model]
	textures *arena.Arena[texture]
	shaders  *arena.Arena[shader]

	directLights *arena.Arena[scene.DirectLight]
	pointLights  *arena.Arena[scene.PointLight]
	flashLights  *arena.Arena[scene.FlashLight]

	camera     scene.Camera
	eye        mgl32.Vec3
	view       mgl32.Mat4
	projection mgl32.Mat4
	background core.Color

	bind binding

	defaultTexture TextureHandle
	whiteTexture   uint32
	litShader      ShaderHandle
	flatShader     ShaderHandle

	width, height int
	currentTime   float64
	previousTime  float64
	inFrame       bool
	closed        bool
}

// New creates a context drawing through dev and reading input from plat.
// No GPU objects are created until they are first needed.
func New(dev Device, plat Platform, cfg core.RenderConfig) *Context {
	w, h := plat.FramebufferSize()
	now := plat.Time()
	c := &Context{
		dev:  dev,
		plat: plat,
		cfg:  cfg,

		models:   arena.New[model](cfg.ModelCapacity),
		textures: arena.New[texture](cfg.TextureCapacity),
		shaders:  arena.New[shader](cfg.ShaderCapacity),

		directLights: arena.NewFixed[scene.DirectLight](MaxDirectLights),
		pointLights:  arena.NewFixed[scene.PointLight](MaxPointLights),
		flashLights:  arena.NewFixed[scene.FlashLight](MaxFlashLights),

		camera:     *scene.NewCamera(cfg.FOV, cfg.Near, cfg.Far),
		background: cfg.Background,

		width:  w,
		height: h,
		// Both clocks start equal so the first frame reports a zero delta.
		currentTime:  now,
		previousTime: now,
	}
	c.view = c.camera.GetViewMatrix()
	c.projection = c.camera.GetProjectionMatrix(w, h)
	dev.Viewport(w, h)
	core.Logger().Debug("renderer: context created", "width", w, "height", h)
	return c
}

// Camera returns the context's camera for direct mutation. Changes take
// effect at the next BeginFrame.
func (c *Context) Camera() *scene.Camera { return &c.camera }

// Close releases every GPU object owned by the context. Further calls
// return ErrClosed; Close itself is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.models.Each(func(_ arena.Handle, m model) {
		c.dev.DeleteMesh(m.vertexArray)
	})
	c.textures.Each(func(_ arena.Handle, t texture) {
		c.dev.DeleteTexture(t.id)
	})
	c.shaders.Each(func(_ arena.Handle, s shader) {
		c.dev.DeleteProgram(s.program)
	})
	if c.whiteTexture != 0 {
		c.dev.DeleteTexture(c.whiteTexture)
	}
	core.Logger().Debug("renderer: context closed",
		"models", c.models.Len(), "textures", c.textures.Len(), "shaders", c.shaders.Len())

	c.models.Destroy()
	c.textures.Destroy()
	c.shaders.Destroy()
	c.directLights.Destroy()
	c.pointLights.Destroy()
	c.flashLights.Destroy()
	c.closed = true
	c.inFrame = false
	return nil
}

func (c *Context) checkOpen() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

func (c *Context) checkDraw() error {
	if c.closed {
		return ErrClosed
	}
	if !c.inFrame {
		return ErrFrameNotBegun
	}
	return nil
}

func handleErr(kind string, h arena.Handle, err error) error {
	return fmt.Errorf("%s %d: %w", kind, h, err)
}
