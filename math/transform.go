// Package math holds the transform conventions shared by the renderer.
//
// All matrices are mgl32 column-major and multiply column vectors, so they
// upload to GL with transpose=false. Model matrices are T·R·S; Euler
// rotations are applied as Ry·Rx·Rz; the camera only yaws.
package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	Vec3Zero    = mgl32.Vec3{0, 0, 0}
	Vec3One     = mgl32.Vec3{1, 1, 1}
	Vec3Up      = mgl32.Vec3{0, 1, 0}
	Vec3Right   = mgl32.Vec3{1, 0, 0}
	Vec3Forward = mgl32.Vec3{0, 0, -1}
)

// ModelMatrix composes Translate(position) · Rotate(rotation) · Scale(scale).
// Vertices are scaled first, then rotated, then translated.
func ModelMatrix(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.Elem())
	s := mgl32.Scale3D(scale.Elem())
	return t.Mul4(Rotation(rotation)).Mul4(s)
}

// Rotation builds Ry(y)·Rx(x)·Rz(z) from Euler angles in radians.
func Rotation(euler mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(euler.Y()).
		Mul4(mgl32.HomogRotate3DX(euler.X())).
		Mul4(mgl32.HomogRotate3DZ(euler.Z()))
}

// RotateY rotates v about the world up axis.
func RotateY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(angle).Mul3x1(v)
}

// YawForward is the camera look direction for the given yaw. Yaw 0 looks down -Z.
func YawForward(yaw float32) mgl32.Vec3 {
	return RotateY(Vec3Forward, yaw)
}

// YawRight is the camera right vector for the given yaw.
func YawRight(yaw float32) mgl32.Vec3 {
	return RotateY(Vec3Right, yaw)
}

// ViewMatrix is the inverse of the camera world transform T(position)·Ry(yaw).
func ViewMatrix(position mgl32.Vec3, yaw float32) mgl32.Mat4 {
	world := mgl32.Translate3D(position.Elem()).Mul4(mgl32.HomogRotate3DY(yaw))
	return world.Inv()
}

// Perspective builds the projection for a viewport of width x height.
// A degenerate viewport (minimised window) uses aspect 1.
func Perspective(fovY float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(fovY, aspect, near, far)
}

// TransformPoint applies m to p with w = 1.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

// Deg converts degrees to radians.
func Deg(d float32) float32 {
	return d * math32.Pi / 180
}
