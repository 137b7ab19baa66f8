// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/bonobo-labs/internal/engine/input"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// Projection holds the perspective parameters shared by the cameras.
type Projection struct {
	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() math.Mat4 {
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(p.FOV, aspect, p.Near, p.Far)
}

// maxPitch keeps the free camera away from the poles where yaw degenerates.
const maxPitch = math.HalfPi - 0.01

// FPSCamera is a free-flying camera steered by mouse look and WASD.
type FPSCamera struct {
	Projection

	position math.Vec3
	yaw      float32 // around +Y, 0 looks down -Z
	pitch    float32

	MouseSensitivity float32
	MoveSpeed        float32
}

// NewFPSCamera creates a camera at the origin looking down -Z.
func NewFPSCamera(fovY, aspect, near, far float32) *FPSCamera {
	return &FPSCamera{
		Projection:       Projection{FOV: fovY, Aspect: aspect, Near: near, Far: far},
		MouseSensitivity: 0.003,
		MoveSpeed:        3,
	}
}

// Position returns the camera position in world space.
func (c *FPSCamera) Position() math.Vec3 { return c.position }

// SetPosition moves the camera without changing its orientation.
func (c *FPSCamera) SetPosition(p math.Vec3) { c.position = p }

// Angles returns yaw and pitch in radians.
func (c *FPSCamera) Angles() (yaw, pitch float32) { return c.yaw, c.pitch }

// SetAngles sets yaw and pitch; pitch is clamped.
func (c *FPSCamera) SetAngles(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = math.Clamp(pitch, -maxPitch, maxPitch)
}

// Forward returns the unit view direction.
func (c *FPSCamera) Forward() math.Vec3 {
	cp := math.Cos(c.pitch)
	return math.Vec3{
		X: -math.Sin(c.yaw) * cp,
		Y: math.Sin(c.pitch),
		Z: -math.Cos(c.yaw) * cp,
	}
}

// Right returns the unit right vector, always horizontal.
func (c *FPSCamera) Right() math.Vec3 {
	return math.Vec3{X: math.Cos(c.yaw), Z: -math.Sin(c.yaw)}
}

// Up returns the unit up vector.
func (c *FPSCamera) Up() math.Vec3 {
	return c.Right().Cross(c.Forward())
}

// LookAt orients the camera towards target.
func (c *FPSCamera) LookAt(target math.Vec3) {
	d := target.Sub(c.position).Normalize()
	if d == (math.Vec3{}) {
		return
	}
	yaw := float32(0)
	if d.X != 0 || d.Z != 0 {
		yaw = math.Atan2(-d.X, -d.Z)
	}
	c.SetAngles(yaw, math.Asin(d.Y))
}

// Update applies mouse look while the left button is held and WASD/QE
// movement. Shift moves faster, Ctrl slower.
func (c *FPSCamera) Update(dt float32, in *input.State) {
	if in.SceneMouseDown(input.MouseLeft) {
		c.SetAngles(
			c.yaw-in.MouseDeltaX*c.MouseSensitivity,
			c.pitch-in.MouseDeltaY*c.MouseSensitivity,
		)
	}

	speed := c.MoveSpeed
	if in.SceneKey(input.KeyLeftShift) {
		speed *= 4
	}
	if in.SceneKey(input.KeyLeftCtrl) {
		speed *= 0.25
	}

	var move math.Vec3
	if in.SceneKey(input.KeyW) {
		move = move.Add(c.Forward())
	}
	if in.SceneKey(input.KeyS) {
		move = move.Sub(c.Forward())
	}
	if in.SceneKey(input.KeyD) {
		move = move.Add(c.Right())
	}
	if in.SceneKey(input.KeyA) {
		move = move.Sub(c.Right())
	}
	if in.SceneKey(input.KeyE) {
		move = move.Add(math.Vec3{Y: 1})
	}
	if in.SceneKey(input.KeyQ) {
		move = move.Sub(math.Vec3{Y: 1})
	}
	c.position = c.position.Add(move.Normalize().Scale(speed * dt))
}

// World returns the camera-to-world transform. Objects attached to the
// camera, like the ship, are placed with World().Mul(offset).
func (c *FPSCamera) World() math.Mat4 {
	f := c.Forward()
	r := c.Right()
	return math.FromBasis(r, r.Cross(f), f.Negate(), c.position)
}

// ViewMatrix returns the world-to-view matrix.
func (c *FPSCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.Forward()), math.Vec3{Y: 1})
}

// WorldToClip returns projection * view.
func (c *FPSCamera) WorldToClip() math.Mat4 {
	return c.Projection.Matrix().Mul(c.ViewMatrix())
}
