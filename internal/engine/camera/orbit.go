package camera

import "github.com/Faultbox/bonobo-labs/pkg/math"

// OrbitCamera circles a center point, either driven by mouse drag or
// spinning on its own.
type OrbitCamera struct {
	Projection

	Center   math.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32 // elevation above the XZ plane

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
	AngularSpeed    float32 // radians per second for Advance
}

// NewOrbitCamera creates an orbit camera placed at eye looking at center.
func NewOrbitCamera(proj Projection, eye, center math.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Projection:      proj,
		Center:          center,
		MinDistance:     1,
		MaxDistance:     proj.Far / 2,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		AngularSpeed:    0.2,
	}
	d := eye.Sub(center)
	c.Distance = d.Length()
	if c.Distance > 0 {
		c.Pitch = math.Asin(d.Y / c.Distance)
		c.Yaw = math.Atan2(d.X, d.Z)
	}
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Cos(c.Yaw),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// WorldToClip returns projection * view.
func (c *OrbitCamera) WorldToClip() math.Mat4 {
	return c.Projection.Matrix().Mul(c.ViewMatrix())
}

// Advance spins the camera around the center.
func (c *OrbitCamera) Advance(dt float32) {
	c.Yaw += c.AngularSpeed * dt
	if c.Yaw > math.TwoPi {
		c.Yaw -= math.TwoPi
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
