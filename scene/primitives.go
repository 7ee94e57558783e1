package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
)

// Primitives are wound counter-clockwise seen from outside, matching the
// back-face culling the renderer enables.

// CreateCube generates an axis-aligned cube centred on the origin with
// per-face normals.
func CreateCube(size float32) core.MeshData {
	s := size / 2
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	mesh := core.MeshData{Name: "Cube"}
	for _, f := range faces {
		base := uint32(len(mesh.Vertices))
		for _, c := range corners {
			p := f.n.Add(f.u.Mul(c[0]*2 - 1)).Add(f.v.Mul(c[1]*2 - 1)).Mul(s)
			mesh.Vertices = append(mesh.Vertices, core.Vertex{Position: p, Normal: f.n, UV: c})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return mesh
}

// CreatePlane generates a flat plane on y = 0 facing up.
func CreatePlane(width, depth float32, subdivisions int) core.MeshData {
	if subdivisions < 1 {
		subdivisions = 1
	}
	mesh := core.MeshData{Name: "Plane"}
	halfW := width / 2
	halfD := depth / 2

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: mgl32.Vec3{-halfW + u*width, 0, -halfD + v*depth},
				Normal:   mgl32.Vec3{0, 1, 0},
				UV:       mgl32.Vec2{u, v},
			})
		}
	}
	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1
			mesh.Indices = append(mesh.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight)
		}
	}
	return mesh
}

// CreateSphere generates a UV sphere.
func CreateSphere(radius float32, segments, rings int) core.MeshData {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	mesh := core.MeshData{Name: "Sphere"}

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi, cosPhi := stdmath.Sincos(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2 * stdmath.Pi / float64(segments)
			sinTheta, cosTheta := stdmath.Sincos(theta)
			normal := mgl32.Vec3{
				float32(sinPhi * cosTheta),
				float32(cosPhi),
				float32(sinPhi * sinTheta),
			}
			mesh.Vertices = append(mesh.Vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)
			mesh.Indices = append(mesh.Indices,
				current, current+1, next,
				current+1, next+1, next)
		}
	}
	return mesh
}
