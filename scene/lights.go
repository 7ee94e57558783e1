package scene

import "github.com/go-gl/mathgl/mgl32"

// DirectLight shines from infinitely far away along Direction.
type DirectLight struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
}

// PointLight radiates from Position in every direction.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// FlashLight is a spot light. Angle is the inner cone half-angle and Cutoff
// the extra falloff band beyond it, both in radians.
type FlashLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Angle     float32
	Cutoff    float32
}
