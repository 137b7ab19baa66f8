package water

import (
	"testing"

	"github.com/Faultbox/bonobo-labs/pkg/math"
)

func TestFlatWithoutAmplitude(t *testing.T) {
	s := NewSurface(2, 1, 0)
	for _, p := range [][2]float32{{0, 0}, {13, -7}, {50, 50}} {
		if h := s.Height(p[0], p[1], 3); h != 2 {
			t.Errorf("Height(%v) = %v, want 2", p, h)
		}
		if n := s.Normal(p[0], p[1], 3); !n.ApproxEqual(math.Vec3{Y: 1}, 1e-6) {
			t.Errorf("Normal(%v) = %v", p, n)
		}
	}
}

func TestHeightWithinBounds(t *testing.T) {
	s := NewSurface(0, 1, 0.5)
	maxH := s.MaxHeight()
	if maxH != 0.75 {
		t.Fatalf("MaxHeight() = %v, want 0.75", maxH)
	}
	for x := float32(-50); x <= 50; x += 7 {
		for z := float32(-50); z <= 50; z += 7 {
			h := s.Height(x, z, 1.5)
			if h < 0 || h > maxH+1e-5 {
				t.Fatalf("Height(%v, %v) = %v outside [0, %v]", x, z, h, maxH)
			}
		}
	}
}

func TestSampleDerivative(t *testing.T) {
	s := NewSurface(0, 1, 1)
	const eps = 1e-2
	x, z, tm := float32(3), float32(-4), float32(0.7)
	_, dx, dz := s.Sample(x, z, tm)
	numX := (s.Height(x+eps, z, tm) - s.Height(x-eps, z, tm)) / (2 * eps)
	numZ := (s.Height(x, z+eps, tm) - s.Height(x, z-eps, tm)) / (2 * eps)
	if math.Abs(dx-numX) > 1e-2 || math.Abs(dz-numZ) > 1e-2 {
		t.Errorf("derivative = (%v, %v), numeric (%v, %v)", dx, dz, numX, numZ)
	}
}
