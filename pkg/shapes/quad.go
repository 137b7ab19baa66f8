package shapes

import "github.com/Faultbox/bonobo-labs/pkg/math"

// Quad builds a flat grid in the XZ plane spanning (0,0,0) to
// (width,0,depth), subdivided into hSplits columns along X and vSplits rows
// along Z. Triangles face +Y.
func Quad(width, depth float32, hSplits, vSplits int) (*MeshData, error) {
	if hSplits <= 0 || vSplits <= 0 {
		return nil, ErrInvalidSplits
	}
	if width <= 0 || depth <= 0 {
		return nil, ErrInvalidSize
	}

	cols := hSplits + 1
	rows := vSplits + 1
	m := newMeshData(cols*rows, 2*hSplits*vSplits)

	up := math.Vec3{Y: 1}
	tangent := math.Vec3{X: 1}
	binormal := math.Vec3{Z: 1}

	for j := 0; j < rows; j++ {
		v := float32(j) / float32(vSplits)
		for i := 0; i < cols; i++ {
			u := float32(i) / float32(hSplits)
			m.addVertex(
				math.Vec3{X: u * width, Z: v * depth},
				up,
				math.Vec3{X: u, Y: v},
				tangent,
				binormal,
			)
		}
	}

	for j := 0; j < vSplits; j++ {
		for i := 0; i < hSplits; i++ {
			tl := uint32(j*cols + i)
			tr := tl + 1
			bl := tl + uint32(cols)
			br := bl + 1
			m.addTriangle(tl, bl, br)
			m.addTriangle(tl, br, tr)
		}
	}
	return m, nil
}
