package shapes

import (
	"errors"
	"testing"

	"github.com/Faultbox/bonobo-labs/pkg/math"
)

const eps = 1e-4

func checkMesh(t *testing.T, m *MeshData, wantVerts, wantTris int) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := m.VertexCount(); got != wantVerts {
		t.Errorf("VertexCount() = %d, want %d", got, wantVerts)
	}
	if got := m.TriangleCount(); got != wantTris {
		t.Errorf("TriangleCount() = %d, want %d", got, wantTris)
	}
	for i, n := range m.Normals {
		if l := n.Length(); math.Abs(l-1) > eps {
			t.Fatalf("normal %d has length %f", i, l)
		}
	}
	for i, tc := range m.TexCoords {
		if tc.X < -eps || tc.X > 1+eps || tc.Y < -eps || tc.Y > 1+eps {
			t.Fatalf("texcoord %d = %v outside [0,1]", i, tc)
		}
	}
}

// checkWinding asserts every non-degenerate triangle faces the same way as
// the stored normals of its vertices.
func checkWinding(t *testing.T, m *MeshData) {
	t.Helper()
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		p0, p1, p2 := m.Positions[a], m.Positions[b], m.Positions[c]
		e1, e2, e3 := p1.Sub(p0), p2.Sub(p0), p2.Sub(p1)
		shortest := min(e1.Length(), e2.Length(), e3.Length())
		longest := max(e1.Length(), e2.Length(), e3.Length())
		// Pole and seam triangles collapse to a line or a point.
		if e1.Cross(e2).Length() < 1e-6 || shortest < 1e-5*longest {
			continue
		}
		face := m.FaceNormal(i)
		avg := m.Normals[a].Add(m.Normals[b]).Add(m.Normals[c])
		if face.Dot(avg) <= 0 {
			t.Fatalf("triangle %d (%d,%d,%d) winds against its normals", i, a, b, c)
		}
	}
}

func TestCheckWindingSkipsCollapsedTriangles(t *testing.T) {
	m := &MeshData{
		Positions: []math.Vec3{{}, {}, {X: 1}},
		Normals:   []math.Vec3{{Y: -1}, {Y: -1}, {Y: -1}},
		TexCoords: make([]math.Vec3, 3),
		Tangents:  make([]math.Vec3, 3),
		Binormals: make([]math.Vec3, 3),
		Indices:   []uint32{0, 1, 2},
	}
	checkWinding(t, m)
}

func TestSpherePoleTrianglesSkipped(t *testing.T) {
	m, err := Sphere(1, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	a, b, _ := m.Triangle(0)
	if !m.Positions[a].ApproxEqual(m.Positions[b], eps) {
		t.Fatalf("triangle 0 should start at the collapsed south pole, got %v %v", m.Positions[a], m.Positions[b])
	}
	checkWinding(t, m)
}

func TestQuad(t *testing.T) {
	m, err := Quad(10, 20, 4, 5)
	if err != nil {
		t.Fatalf("Quad() error = %v", err)
	}
	checkMesh(t, m, 5*6, 2*4*5)
	checkWinding(t, m)

	last := m.Positions[len(m.Positions)-1]
	if !last.ApproxEqual(math.Vec3{X: 10, Z: 20}, eps) {
		t.Errorf("far corner = %v, want (10,0,20)", last)
	}
	for _, p := range m.Positions {
		if p.Y != 0 {
			t.Fatalf("vertex %v not on y = 0", p)
		}
	}
	for i := 0; i < m.TriangleCount(); i++ {
		if m.FaceNormal(i).Y <= 0 {
			t.Fatalf("triangle %d faces down", i)
		}
	}
}

func TestSphere(t *testing.T) {
	tests := []struct {
		radius   float32
		lon, lat int
	}{
		{1, 4, 4},
		{0.5, 10, 7},
		{500, 30, 20},
	}
	for _, tt := range tests {
		m, err := Sphere(tt.radius, tt.lon, tt.lat)
		if err != nil {
			t.Fatalf("Sphere(%v, %d, %d) error = %v", tt.radius, tt.lon, tt.lat, err)
		}
		checkMesh(t, m, (tt.lon+2)*(tt.lat+2), 2*(tt.lon+1)*(tt.lat+1))
		checkWinding(t, m)

		tol := tt.radius * eps
		for i, p := range m.Positions {
			if d := p.Length(); math.Abs(d-tt.radius) > tol {
				t.Fatalf("vertex %d at distance %f, want %f", i, d, tt.radius)
			}
			// Normals point outward.
			if p.Normalize().Dot(m.Normals[i]) < 1-1e-3 {
				t.Fatalf("normal %d = %v not radial for %v", i, m.Normals[i], p)
			}
		}
	}
}

func TestSpherePoles(t *testing.T) {
	m, err := Sphere(2, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if first := m.Positions[0]; !first.ApproxEqual(math.Vec3{Y: -2}, eps) {
		t.Errorf("first vertex = %v, want south pole", first)
	}
	if top := m.Positions[3+1]; !top.ApproxEqual(math.Vec3{Y: 2}, eps) {
		t.Errorf("last latitude vertex = %v, want north pole", top)
	}
}

func TestTorus(t *testing.T) {
	const R, r = 0.5, 0.2
	m, err := Torus(R, r, 16, 8)
	if err != nil {
		t.Fatalf("Torus() error = %v", err)
	}
	checkMesh(t, m, 17*9, 2*16*8)
	checkWinding(t, m)

	for i, p := range m.Positions {
		// Distance from the tube centre line equals the minor radius.
		ring := math.Vec3{X: p.X, Y: p.Y}
		centre := ring.Normalize().Scale(R)
		if d := p.Distance(centre); math.Abs(d-r) > eps {
			t.Fatalf("vertex %d is %f from the tube centre, want %f", i, d, r)
		}
		if dot := m.Tangents[i].Dot(m.Normals[i]); math.Abs(dot) > eps {
			t.Fatalf("tangent %d not orthogonal to normal (dot %f)", i, dot)
		}
	}
}

func TestCircleRing(t *testing.T) {
	const radius, spread float32 = 2, 1
	m, err := CircleRing(radius, spread, 24, 3)
	if err != nil {
		t.Fatalf("CircleRing() error = %v", err)
	}
	checkMesh(t, m, 25*4, 2*24*3)
	checkWinding(t, m)

	for i, p := range m.Positions {
		d := p.Length()
		if d < radius-spread/2-eps || d > radius+spread/2+eps {
			t.Fatalf("vertex %d at radius %f outside the ring", i, d)
		}
		if p.Z != 0 {
			t.Fatalf("vertex %d off the XY plane", i)
		}
	}
}

func TestCircleRingInnerEdge(t *testing.T) {
	const radius, spread float32 = 2, 1
	m, err := CircleRing(radius, spread, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d := m.Positions[0].Length(); math.Abs(d-1.5) > eps {
		t.Errorf("inner edge at radius %f, want 1.5", d)
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*MeshData, error)
		want error
	}{
		{"quad zero splits", func() (*MeshData, error) { return Quad(1, 1, 0, 1) }, ErrInvalidSplits},
		{"quad negative size", func() (*MeshData, error) { return Quad(-1, 1, 1, 1) }, ErrInvalidSize},
		{"sphere zero lat", func() (*MeshData, error) { return Sphere(1, 4, 0) }, ErrInvalidSplits},
		{"sphere zero radius", func() (*MeshData, error) { return Sphere(0, 4, 4) }, ErrInvalidSize},
		{"torus zero minor splits", func() (*MeshData, error) { return Torus(1, 0.2, 4, 0) }, ErrInvalidSplits},
		{"torus zero tube", func() (*MeshData, error) { return Torus(1, 0, 4, 4) }, ErrInvalidSize},
		{"ring zero splits", func() (*MeshData, error) { return CircleRing(1, 0.5, 0, 1) }, ErrInvalidSplits},
		{"ring too wide", func() (*MeshData, error) { return CircleRing(1, 3, 8, 1) }, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.fn()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Errorf("mesh = %v, want nil", m)
			}
		})
	}
}

func TestValidateRejectsBadIndices(t *testing.T) {
	m, err := Quad(1, 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	m.Indices = append(m.Indices, 0, 1, 99)
	if err := m.Validate(); err == nil {
		t.Error("Validate() accepted an out-of-range index")
	}

	m.Indices = m.Indices[:len(m.Indices)-1]
	if err := m.Validate(); err == nil {
		t.Error("Validate() accepted a partial triangle")
	}
}
