// Package water evaluates the wave field of the water surface on the CPU.
// The constants match the water vertex shader so scenes can query the
// surface height the GPU displaces the quad to.
package water

import "github.com/Faultbox/bonobo-labs/pkg/math"

// Wave is one component of the sum of sines.
type Wave struct {
	Direction [2]float32 // in the XZ plane
	Frequency float32
	Phase     float32
	Sharpness float32
	Amplitude float32
}

// DefaultWaves are the waves of the water shader.
var DefaultWaves = []Wave{
	{Direction: [2]float32{-1, 0}, Frequency: 0.2, Phase: 0.5, Sharpness: 2, Amplitude: 1},
	{Direction: [2]float32{-0.7, 0.7}, Frequency: 0.4, Phase: 1.3, Sharpness: 2, Amplitude: 0.5},
}

// Surface is the animated water surface.
type Surface struct {
	Waves     []Wave
	Level     float32 // rest height in world units
	Speed     float32
	Amplitude float32
}

// NewSurface returns the default wave field at level.
func NewSurface(level, speed, amplitude float32) *Surface {
	return &Surface{Waves: DefaultWaves, Level: level, Speed: speed, Amplitude: amplitude}
}

// Sample returns the height at (x, z) and time t with its partial
// derivatives along x and z.
func (s *Surface) Sample(x, z, t float32) (height, dx, dz float32) {
	for _, w := range s.Waves {
		a := w.Amplitude * s.Amplitude
		arg := (w.Direction[0]*x+w.Direction[1]*z)*w.Frequency + t*s.Speed*w.Phase
		sn := 0.5*math.Sin(arg) + 0.5
		height += a * pow(sn, w.Sharpness)
		d := 0.5 * w.Sharpness * w.Frequency * a * pow(sn, w.Sharpness-1) * math.Cos(arg)
		dx += d * w.Direction[0]
		dz += d * w.Direction[1]
	}
	return s.Level + height, dx, dz
}

// Height returns the surface height at (x, z) and time t.
func (s *Surface) Height(x, z, t float32) float32 {
	h, _, _ := s.Sample(x, z, t)
	return h
}

// Normal returns the unit surface normal at (x, z) and time t.
func (s *Surface) Normal(x, z, t float32) math.Vec3 {
	_, dx, dz := s.Sample(x, z, t)
	return math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize()
}

// MaxHeight bounds the surface from above.
func (s *Surface) MaxHeight() float32 {
	h := s.Level
	for _, w := range s.Waves {
		h += math.Abs(w.Amplitude * s.Amplitude)
	}
	return h
}

func pow(x, y float32) float32 {
	switch y {
	case 1:
		return x
	case 2:
		return x * x
	}
	return math.Pow(x, y)
}
