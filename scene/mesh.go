package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
)

// LoadMesh reads a mesh file, choosing the parser from the extension:
// .obj is Wavefront OBJ, .gltf and .glb are glTF 2.0.
func LoadMesh(path string) (core.MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return core.MeshData{}, fmt.Errorf("load mesh %q: unsupported format %q", path, ext)
	}
}

// ComputeNormals writes area-weighted vertex normals from the triangle list.
func ComputeNormals(mesh *core.MeshData) {
	accum := make([]mgl32.Vec3, len(mesh.Vertices))
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0, i1, i2 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if int(i0) >= len(accum) || int(i1) >= len(accum) || int(i2) >= len(accum) {
			continue
		}
		v0 := mesh.Vertices[i0].Position
		v1 := mesh.Vertices[i1].Position
		v2 := mesh.Vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range mesh.Vertices {
		if accum[i].Len() > 0 {
			mesh.Vertices[i].Normal = accum[i].Normalize()
		}
	}
}

// Validate checks that every index points at a vertex and the index count
// forms whole triangles.
func Validate(mesh core.MeshData) error {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("mesh %q is empty", mesh.Name)
	}
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q: %d indices is not a multiple of 3", mesh.Name, len(mesh.Indices))
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			return fmt.Errorf("mesh %q: index %d out of range at %d", mesh.Name, idx, i)
		}
	}
	return nil
}
