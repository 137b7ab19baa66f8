package shapes

import "github.com/Faultbox/bonobo-labs/pkg/math"

// CircleRing builds a flat annulus in the XY plane facing +Z. The ring is
// centred on radius and spreads spreadLength across, from
// radius-spreadLength/2 to radius+spreadLength/2.
func CircleRing(radius, spreadLength float32, circleSplits, spreadSplits int) (*MeshData, error) {
	if circleSplits <= 0 || spreadSplits <= 0 {
		return nil, ErrInvalidSplits
	}
	if radius <= 0 || spreadLength <= 0 || spreadLength/2 > radius {
		return nil, ErrInvalidSize
	}

	radial := spreadSplits + 1
	m := newMeshData((circleSplits+1)*radial, 2*circleSplits*spreadSplits)

	dTheta := math.TwoPi / float32(circleSplits)
	dSpread := spreadLength / float32(spreadSplits)
	inner := radius - spreadLength/2
	normal := math.Vec3{Z: 1}

	for i := 0; i <= circleSplits; i++ {
		theta := float32(i) * dTheta
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		tangent := math.Vec3{X: -sinT, Y: cosT}
		binormal := math.Vec3{X: cosT, Y: sinT}
		for j := 0; j < radial; j++ {
			r := inner + float32(j)*dSpread
			m.addVertex(
				math.Vec3{X: r * cosT, Y: r * sinT},
				normal,
				math.Vec3{
					X: float32(i) / float32(circleSplits),
					Y: float32(j) / float32(spreadSplits),
				},
				tangent,
				binormal,
			)
		}
	}

	for i := 0; i < circleSplits; i++ {
		for j := 0; j < spreadSplits; j++ {
			a := uint32(i*radial + j)
			b := a + uint32(radial)
			m.addTriangle(a, a+1, b+1)
			m.addTriangle(a, b+1, b)
		}
	}
	return m, nil
}
