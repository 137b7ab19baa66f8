// Package shapes builds parametric meshes on the CPU.
//
// Every builder is a pure function returning MeshData: planar attribute
// arrays plus an index list in triangle triples. Nothing here touches GL, so
// the output can be checked numerically and uploaded later by engine/mesh.
package shapes

import (
	"errors"
	"fmt"

	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// Builder errors.
var (
	ErrInvalidSplits = errors.New("shapes: split count must be positive")
	ErrInvalidSize   = errors.New("shapes: size must be positive")
)

// MeshData holds the vertex attributes of a mesh. All attribute slices have
// the same length; Indices holds triangles as consecutive triples.
type MeshData struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec3
	Tangents  []math.Vec3
	Binormals []math.Vec3
	Indices   []uint32
}

func newMeshData(vertices, triangles int) *MeshData {
	return &MeshData{
		Positions: make([]math.Vec3, 0, vertices),
		Normals:   make([]math.Vec3, 0, vertices),
		TexCoords: make([]math.Vec3, 0, vertices),
		Tangents:  make([]math.Vec3, 0, vertices),
		Binormals: make([]math.Vec3, 0, vertices),
		Indices:   make([]uint32, 0, triangles*3),
	}
}

func (m *MeshData) addVertex(pos, normal, tex, tangent, binormal math.Vec3) {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.TexCoords = append(m.TexCoords, tex)
	m.Tangents = append(m.Tangents, tangent)
	m.Binormals = append(m.Binormals, binormal)
}

func (m *MeshData) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertex indices of triangle i.
func (m *MeshData) Triangle(i int) (uint32, uint32, uint32) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// Validate checks that the attribute arrays agree in length and that every
// index references an existing vertex.
func (m *MeshData) Validate() error {
	n := len(m.Positions)
	for name, attr := range map[string][]math.Vec3{
		"normals":   m.Normals,
		"texcoords": m.TexCoords,
		"tangents":  m.Tangents,
		"binormals": m.Binormals,
	} {
		if len(attr) != n {
			return fmt.Errorf("shapes: %s has %d entries, positions has %d", name, len(attr), n)
		}
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("shapes: index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("shapes: index %d at position %d out of range [0,%d)", idx, i, n)
		}
	}
	return nil
}

// FaceNormal returns the geometric normal of triangle i following its
// winding order.
func (m *MeshData) FaceNormal(i int) math.Vec3 {
	a, b, c := m.Triangle(i)
	p0, p1, p2 := m.Positions[a], m.Positions[b], m.Positions[c]
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
