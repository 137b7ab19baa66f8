package node

import "github.com/Faultbox/bonobo-labs/pkg/math"

// Transform is a local translate-rotate-scale transform. Rotation is applied
// as Y, then X, then Z.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Vec3 // radians around X, Y and Z
	Scale       math.Vec3
}

// Identity returns a transform that changes nothing.
func Identity() Transform {
	return Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Matrix returns T * Ry * Rx * Rz * S.
func (t Transform) Matrix() math.Mat4 {
	return math.TranslateVec(t.Translation).
		Mul(math.RotateY(t.Rotation.Y)).
		Mul(math.RotateX(t.Rotation.X)).
		Mul(math.RotateZ(t.Rotation.Z)).
		Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Translate moves by d.
func (t *Transform) Translate(d math.Vec3) {
	t.Translation = t.Translation.Add(d)
}

// SetScale scales uniformly.
func (t *Transform) SetScale(s float32) {
	t.Scale = math.Vec3{X: s, Y: s, Z: s}
}

// Rotate adds euler angles.
func (t *Transform) Rotate(d math.Vec3) {
	t.Rotation = t.Rotation.Add(d)
}
