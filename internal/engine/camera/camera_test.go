package camera

import (
	"testing"

	"github.com/Faultbox/bonobo-labs/internal/engine/input"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

type keySource struct {
	keys    map[input.Key]bool
	left    bool
	x, y    float32
	capture bool
}

func (k *keySource) KeyDown(key input.Key) bool { return k.keys[key] }

func (k *keySource) MouseDown(b input.MouseButton) bool { return b == input.MouseLeft && k.left }

func (k *keySource) MousePos() (float32, float32) { return k.x, k.y }

func (k *keySource) WantCapture() (bool, bool) { return k.capture, k.capture }

const eps = 1e-4

func TestFPSCameraDefaults(t *testing.T) {
	c := NewFPSCamera(math.Radians(45), 16.0/9.0, 0.01, 1000)
	if f := c.Forward(); !f.ApproxEqual(math.Vec3{Z: -1}, eps) {
		t.Errorf("Forward() = %v, want -Z", f)
	}
	if u := c.Up(); !u.ApproxEqual(math.Vec3{Y: 1}, eps) {
		t.Errorf("Up() = %v, want +Y", u)
	}
}

func TestFPSCameraMoves(t *testing.T) {
	c := NewFPSCamera(math.Radians(45), 1, 0.01, 1000)
	c.SetPosition(math.Vec3{Z: 6})

	src := &keySource{keys: map[input.Key]bool{input.KeyW: true}}
	var in input.State
	in.Update(src)

	c.Update(0.5, &in)
	want := math.Vec3{Z: 6 - 0.5*c.MoveSpeed}
	if got := c.Position(); !got.ApproxEqual(want, eps) {
		t.Errorf("Position() = %v, want %v", got, want)
	}

	src.capture = true
	in.Update(src)
	c.Update(0.5, &in)
	if got := c.Position(); !got.ApproxEqual(want, eps) {
		t.Errorf("captured input moved the camera to %v", got)
	}
}

func TestFPSCameraMouseLook(t *testing.T) {
	c := NewFPSCamera(math.Radians(45), 1, 0.01, 1000)
	src := &keySource{keys: map[input.Key]bool{}}
	var in input.State
	in.Update(src)

	// Dragging right turns right.
	src.left = true
	src.x = 100
	in.Update(src)
	c.Update(0.016, &in)
	if f := c.Forward(); f.X <= 0 {
		t.Errorf("Forward() after dragging right = %v", f)
	}

	// Pitch is clamped short of straight up.
	src.y = -100000
	in.Update(src)
	c.Update(0.016, &in)
	if _, pitch := c.Angles(); pitch >= math.HalfPi {
		t.Errorf("pitch %v not clamped", pitch)
	}
}

func TestFPSCameraLookAt(t *testing.T) {
	c := NewFPSCamera(math.Radians(45), 1, 0.01, 1000)
	c.SetPosition(math.Vec3{X: -40, Y: 14, Z: 6})
	c.LookAt(math.Vec3{})

	want := math.Vec3{X: 40, Y: -14, Z: -6}.Normalize()
	if got := c.Forward(); !got.ApproxEqual(want, eps) {
		t.Errorf("Forward() = %v, want %v", got, want)
	}
}

func TestFPSCameraWorldMatrix(t *testing.T) {
	c := NewFPSCamera(math.Radians(45), 1, 0.01, 1000)
	c.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3})
	c.SetAngles(math.HalfPi, 0) // looking down -X

	ship := c.World().TransformPoint(math.Vec3{Y: -1, Z: -5})
	want := math.Vec3{X: -4, Y: 1, Z: 3}
	if !ship.ApproxEqual(want, eps) {
		t.Errorf("attached point = %v, want %v", ship, want)
	}

	// The view matrix is the inverse of the world matrix.
	p := c.ViewMatrix().TransformPoint(ship)
	if !p.ApproxEqual(math.Vec3{Y: -1, Z: -5}, 1e-3) {
		t.Errorf("view-space point = %v", p)
	}
}

func TestOrbitCamera(t *testing.T) {
	proj := Projection{FOV: math.Radians(45), Aspect: 1, Near: 0.01, Far: 1000}
	eye := math.Vec3{X: -40, Y: 14, Z: 6}
	c := NewOrbitCamera(proj, eye, math.Vec3{})

	if got := c.Position(); !got.ApproxEqual(eye, 1e-3) {
		t.Errorf("Position() = %v, want %v", got, eye)
	}

	d := c.Distance
	c.Advance(1)
	if got := c.Position().Length(); math.Abs(got-d) > 1e-3 {
		t.Errorf("orbit changed distance to %v, want %v", got, d)
	}

	c.HandleZoom(100)
	if c.Distance != c.MinDistance {
		t.Errorf("zoom not clamped: %v", c.Distance)
	}
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch not clamped: %v", c.Pitch)
	}
}
