package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "expected %v, got %v", want, got)
	}
}

func TestCameraBasisFollowsYawOnly(t *testing.T) {
	cam := NewCamera(math.Pi/2, 0.1, 100)
	assertNear(t, mgl32.Vec3{0, 0, -1}, cam.GetForward())
	assertNear(t, mgl32.Vec3{1, 0, 0}, cam.GetRight())

	cam.SetRotation(mgl32.Vec3{0.7, math.Pi / 2, 0.3})
	assertNear(t, mgl32.Vec3{-1, 0, 0}, cam.GetForward())
	assertNear(t, mgl32.Vec3{0, 0, -1}, cam.GetRight())
}

func TestCameraViewMovesWorldOpposite(t *testing.T) {
	cam := NewCamera(math.Pi/2, 0.1, 100)
	cam.SetPosition(mgl32.Vec3{0, 0, 5})
	cam.Translate(mgl32.Vec3{1, 0, 0})

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, cam.GetViewMatrix())
	assertNear(t, mgl32.Vec3{0, 0, -5}, p)
}

func TestCameraAddYaw(t *testing.T) {
	cam := NewCamera(1, 0.1, 100)
	cam.AddYaw(0.25)
	cam.AddYaw(0.25)
	assert.InDelta(t, 0.5, cam.Yaw(), 1e-6)
}

func TestCameraProjectionDegenerateViewport(t *testing.T) {
	cam := NewCamera(math.Pi/2, 0.1, 100)
	assert.Equal(t, cam.GetProjectionMatrix(1, 1), cam.GetProjectionMatrix(0, 0))
}
