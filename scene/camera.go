package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	remath "vgfx/math"
)

// Camera is a yaw-driven perspective camera. Rotation holds Euler angles in
// radians; only Rotation.Y (yaw) affects the view and the movement basis.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	FOV      float32
	Near     float32
	Far      float32
}

func NewCamera(fov, near, far float32) *Camera {
	return &Camera{FOV: fov, Near: near, Far: far}
}

func (c *Camera) SetPosition(pos mgl32.Vec3) { c.Position = pos }

func (c *Camera) SetRotation(rot mgl32.Vec3) { c.Rotation = rot }

func (c *Camera) Translate(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
}

// Yaw returns the rotation about the up axis.
func (c *Camera) Yaw() float32 { return c.Rotation.Y() }

// AddYaw turns the camera; positive values turn left.
func (c *Camera) AddYaw(delta float32) { c.Rotation[1] += delta }

func (c *Camera) GetForward() mgl32.Vec3 { return remath.YawForward(c.Yaw()) }

func (c *Camera) GetRight() mgl32.Vec3 { return remath.YawRight(c.Yaw()) }

// GetViewMatrix inverts the camera world transform.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return remath.ViewMatrix(c.Position, c.Yaw())
}

// GetProjectionMatrix builds the perspective for a width x height viewport.
func (c *Camera) GetProjectionMatrix(width, height int) mgl32.Mat4 {
	return remath.Perspective(c.FOV, width, height, c.Near, c.Far)
}
