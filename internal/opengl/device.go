// Package opengl implements renderer.Device on an OpenGL 4.1 core context.
// Every method must be called from the goroutine that owns the context.
package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"vgfx/core"
)

// Device is the OpenGL rendering backend.
type Device struct {
	meshes map[uint32]*gpuMesh

	// streaming buffer for 2D shapes
	shapeVAO uint32
	shapeVBO uint32
	shapeCap int
}

// New initialises OpenGL function pointers and the fixed pipeline state.
// Must be called after the window's context is made current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	core.Logger().Info("opengl: context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	return &Device{meshes: make(map[uint32]*gpuMesh)}, nil
}

// Clear fills the color and depth buffers.
func (d *Device) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Destroy releases buffers the device itself owns. Meshes, textures and
// programs belong to the caller.
func (d *Device) Destroy() {
	for vao := range d.meshes {
		d.DeleteMesh(vao)
	}
	if d.shapeVBO != 0 {
		gl.DeleteBuffers(1, &d.shapeVBO)
		gl.DeleteVertexArrays(1, &d.shapeVAO)
		d.shapeVBO, d.shapeVAO, d.shapeCap = 0, 0, 0
	}
}
