// Package interp provides linear and Catmull-Rom interpolation between
// points, used to drive animated paths.
package interp

import "github.com/Faultbox/bonobo-labs/pkg/math"

// Lerp returns p0 + x·(p1 − p0).
func Lerp(p0, p1 math.Vec3, x float32) math.Vec3 {
	return p0.Lerp(p1, x)
}

// CatmullRom evaluates the cardinal spline segment between p1 and p2 at
// x ∈ [0,1]. tension 0.5 gives the classic Catmull-Rom curve; the curve
// passes through p1 at x = 0 and p2 at x = 1 for any tension.
func CatmullRom(p0, p1, p2, p3 math.Vec3, tension, x float32) math.Vec3 {
	w0, w1, w2, w3 := weights(tension, x)
	return p0.Scale(w0).Add(p1.Scale(w1)).Add(p2.Scale(w2)).Add(p3.Scale(w3))
}

// weights expands [1 x x² x³]·M(t) for the cardinal basis matrix.
func weights(t, x float32) (w0, w1, w2, w3 float32) {
	x2 := x * x
	x3 := x2 * x
	w0 = -t*x + 2*t*x2 - t*x3
	w1 = 1 + (t-3)*x2 + (2-t)*x3
	w2 = t*x + (3-2*t)*x2 + (t-2)*x3
	w3 = -t*x2 + t*x3
	return
}

// Path is a closed loop through control points.
type Path struct {
	Points  []math.Vec3
	Tension float32
}

// NewPath returns a closed Catmull-Rom path with tension 0.5.
func NewPath(points ...math.Vec3) *Path {
	return &Path{Points: points, Tension: 0.5}
}

// At evaluates the path at parameter s, where each whole unit of s advances
// one segment and the loop wraps. With linear set the segments are straight.
func (p *Path) At(s float32, linear bool) math.Vec3 {
	n := len(p.Points)
	switch n {
	case 0:
		return math.Vec3{}
	case 1:
		return p.Points[0]
	}

	loops := float32(int(s / float32(n)))
	s -= loops * float32(n)
	if s < 0 {
		s += float32(n)
	}
	i := int(s)
	if i >= n {
		i = n - 1
	}
	x := s - float32(i)

	at := func(k int) math.Vec3 { return p.Points[((k%n)+n)%n] }
	if linear {
		return Lerp(at(i), at(i+1), x)
	}
	return CatmullRom(at(i-1), at(i), at(i+1), at(i+2), p.Tension, x)
}
