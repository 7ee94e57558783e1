package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/arena"
)

// Handles are opaque and never reused. The zero value of each means "none",
// or for textures "use the default texture".
type (
	ModelHandle   arena.Handle
	TextureHandle arena.Handle
	ShaderHandle  arena.Handle
	LightHandle   arena.Handle
)

type model struct {
	vertexArray uint32
	indexCount  int32
	shader      ShaderHandle
	texture     TextureHandle
	color       mgl32.Vec3
}

type texture struct {
	id     uint32
	width  int
	height int
}

type shader struct {
	program uint32
	// locations caches name lookups, including misses (-1).
	locations map[string]int32

	// set when loaded from files, for ReloadShader
	vertexPath   string
	fragmentPath string
}
