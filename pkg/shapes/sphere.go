package shapes

import "github.com/Faultbox/bonobo-labs/pkg/math"

// Sphere builds a UV sphere centred at the origin. The azimuth θ walks
// [0, 2π] in lonSplits+2 samples and the polar angle φ walks [0, π] in
// latSplits+2 samples, so the seam and both poles carry duplicated vertices
// with distinct texture coordinates.
func Sphere(radius float32, lonSplits, latSplits int) (*MeshData, error) {
	if lonSplits <= 0 || latSplits <= 0 {
		return nil, ErrInvalidSplits
	}
	if radius <= 0 {
		return nil, ErrInvalidSize
	}

	lonVerts := lonSplits + 2
	latVerts := latSplits + 2
	m := newMeshData(lonVerts*latVerts, 2*(lonSplits+1)*(latSplits+1))

	dTheta := math.TwoPi / float32(lonSplits+1)
	dPhi := math.Pi / float32(latSplits+1)

	for i := 0; i < lonVerts; i++ {
		theta := float32(i) * dTheta
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for j := 0; j < latVerts; j++ {
			phi := float32(j) * dPhi
			sinP, cosP := math.Sin(phi), math.Cos(phi)

			pos := math.Vec3{X: radius * sinT * sinP, Y: -radius * cosP, Z: radius * cosT * sinP}
			tangent := math.Vec3{X: cosT, Z: -sinT}
			binormal := math.Vec3{X: sinT * cosP, Y: sinP, Z: cosT * cosP}
			normal := tangent.Cross(binormal).Normalize()
			tex := math.Vec3{
				X: float32(i) / float32(lonSplits+1),
				Y: float32(j) / float32(latSplits+1),
			}
			m.addVertex(pos, normal, tex, tangent, binormal)
		}
	}

	for i := 0; i < lonSplits+1; i++ {
		for j := 0; j < latSplits+1; j++ {
			a := uint32(i*latVerts + j)
			b := uint32((i+1)*latVerts + j)
			m.addTriangle(a, b, b+1)
			m.addTriangle(a, b+1, a+1)
		}
	}
	return m, nil
}
