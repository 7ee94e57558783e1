package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"vgfx/core"
)

// gpuMesh holds the buffer objects behind one vertex array.
type gpuMesh struct {
	vbo uint32
	ebo uint32
}

// UploadMesh copies interleaved vertices and indices into static buffers.
// Attribute locations follow core.Vertex: 0 position, 1 normal, 2 texcoord.
func (d *Device) UploadMesh(mesh core.MeshData) (uint32, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return 0, fmt.Errorf("mesh %q has no geometry", mesh.Name)
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	var vao uint32
	gpu := &gpuMesh{}
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &gpu.vbo)
	gl.GenBuffers(1, &gpu.ebo)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	if err := glError("upload mesh"); err != nil {
		d.meshes[vao] = gpu
		d.DeleteMesh(vao)
		return 0, err
	}

	d.meshes[vao] = gpu
	return vao, nil
}

func (d *Device) DrawIndexed(vertexArray uint32, indexCount int32) {
	gl.BindVertexArray(vertexArray)
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DeleteMesh frees the vertex array and its buffers.
func (d *Device) DeleteMesh(vertexArray uint32) {
	gpu, ok := d.meshes[vertexArray]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &gpu.vbo)
	gl.DeleteBuffers(1, &gpu.ebo)
	gl.DeleteVertexArrays(1, &vertexArray)
	delete(d.meshes, vertexArray)
}

// glError drains the error queue and reports the first error, if any.
func glError(op string) error {
	var first uint32
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
		if first == 0 {
			first = e
		}
	}
	if first != 0 {
		return fmt.Errorf("%s: GL error 0x%04x", op, first)
	}
	return nil
}
