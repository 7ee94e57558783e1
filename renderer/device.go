package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
	"vgfx/scene"
	"vgfx/shapes"
)

// Device is the GPU API the renderer drives. All calls happen on the thread
// that owns the graphics context. Object names are the API's own ids; 0 is
// never a valid object.
type Device interface {
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform
	// with that name.
	UniformLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform3f(loc int32, v mgl32.Vec3)
	Uniform4f(loc int32, v mgl32.Vec4)
	UniformMatrix4(loc int32, m mgl32.Mat4)

	// UploadMesh copies indexed geometry into GPU buffers and returns the
	// vertex array that draws it.
	UploadMesh(mesh core.MeshData) (uint32, error)
	DrawIndexed(vertexArray uint32, indexCount int32)
	DeleteMesh(vertexArray uint32)

	CreateTexture(img *scene.Image) (uint32, error)
	BindTexture(unit uint32, texture uint32)
	DeleteTexture(texture uint32)

	Clear(c core.Color)
	Viewport(width, height int)

	// DrawShape streams 2D x,y pairs and draws them with the given mode.
	DrawShape(mode shapes.Mode, vertices []float32)
}

// Platform is the window and input surface consumed by the frame loop.
type Platform interface {
	// ResetInput clears per-frame input state: edge-triggered key presses
	// and the mouse delta.
	ResetInput()
	PollEvents()
	KeyDown(key core.Key) bool
	ShouldClose() bool
	SetShouldClose(bool)
	FramebufferSize() (width, height int)
	// Time is seconds since the platform started.
	Time() float64
	SwapBuffers()
}
