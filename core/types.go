package core

import (
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/math"
)

// Color is a linear RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorRed     = Color{1, 0, 0, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorBlue    = Color{0, 0, 1, 1}
	ColorYellow  = Color{1, 1, 0, 1}
	ColorMagenta = Color{1, 0, 1, 1}
	ColorCyan    = Color{0, 1, 1, 1}
)

// RGB drops alpha.
func (c Color) RGB() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Vec4 returns the color as an RGBA vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// ColorFromRGB builds an opaque color from an RGB vector.
func ColorFromRGB(v mgl32.Vec3) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: 1}
}

// Vertex is the interleaved layout uploaded for every model:
// location 0 position, location 1 normal, location 2 texcoord.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// MeshData is CPU-side indexed triangle geometry.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Append merges other into m, rebasing its indices.
func (m *MeshData) Append(other MeshData) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// Transform places an object in the world. Rotation holds Euler angles in radians.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

func (t Transform) GetMatrix() mgl32.Mat4 {
	return math.ModelMatrix(t.Position, t.Rotation, t.Scale)
}
