package shapes

import "github.com/Faultbox/bonobo-labs/pkg/math"

// Torus builds a torus around the Z axis. majorRadius is the distance from
// the centre to the middle of the tube and minorRadius the tube radius.
// u walks the major circle in majorSplits steps, v the tube in minorSplits.
func Torus(majorRadius, minorRadius float32, majorSplits, minorSplits int) (*MeshData, error) {
	if majorSplits <= 0 || minorSplits <= 0 {
		return nil, ErrInvalidSplits
	}
	if majorRadius <= 0 || minorRadius <= 0 {
		return nil, ErrInvalidSize
	}

	ringVerts := minorSplits + 1
	m := newMeshData((majorSplits+1)*ringVerts, 2*majorSplits*minorSplits)

	du := math.TwoPi / float32(majorSplits)
	dv := math.TwoPi / float32(minorSplits)

	for i := 0; i <= majorSplits; i++ {
		u := float32(i) * du
		sinU, cosU := math.Sin(u), math.Cos(u)
		for j := 0; j <= minorSplits; j++ {
			v := float32(j) * dv
			sinV, cosV := math.Sin(v), math.Cos(v)
			ring := majorRadius + minorRadius*cosV

			pos := math.Vec3{X: ring * cosU, Y: ring * sinU, Z: minorRadius * sinV}
			normal := math.Vec3{X: cosV * cosU, Y: cosV * sinU, Z: sinV}
			tangent := math.Vec3{X: -sinU, Y: cosU}
			binormal := normal.Cross(tangent)
			tex := math.Vec3{
				X: float32(i) / float32(majorSplits),
				Y: float32(j) / float32(minorSplits),
			}
			m.addVertex(pos, normal, tex, tangent, binormal)
		}
	}

	for i := 0; i < majorSplits; i++ {
		for j := 0; j < minorSplits; j++ {
			first := uint32(i*ringVerts + j)
			second := first + uint32(ringVerts)
			m.addTriangle(first, second, first+1)
			m.addTriangle(second, second+1, first+1)
		}
	}
	return m, nil
}
