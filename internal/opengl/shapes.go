package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"vgfx/shapes"
)

// primitive maps a shape mode to its GL draw mode.
func primitive(mode shapes.Mode) uint32 {
	switch mode {
	case shapes.LineLoop:
		return gl.LINE_LOOP
	case shapes.LineStrip:
		return gl.LINE_STRIP
	case shapes.Lines:
		return gl.LINES
	default:
		return gl.TRIANGLE_FAN
	}
}

// DrawShape streams x,y pairs through a shared dynamic buffer and draws
// them over the scene with depth testing and culling off.
func (d *Device) DrawShape(mode shapes.Mode, vertices []float32) {
	if len(vertices) < 2 {
		return
	}
	if d.shapeVAO == 0 {
		gl.GenVertexArrays(1, &d.shapeVAO)
		gl.GenBuffers(1, &d.shapeVBO)
		gl.BindVertexArray(d.shapeVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, d.shapeVBO)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	} else {
		gl.BindVertexArray(d.shapeVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, d.shapeVBO)
	}

	size := len(vertices) * 4
	if size > d.shapeCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		d.shapeCap = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.DrawArrays(primitive(mode), 0, int32(len(vertices)/2))
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
