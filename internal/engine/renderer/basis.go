package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/bonobo-labs/internal/engine/mesh"
	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/pkg/math"
	"github.com/Faultbox/bonobo-labs/pkg/shapes"
)

// Basis draws the X, Y and Z axes of a frame as red, green and blue rods.
type Basis struct {
	program *shader.Program
	rod     *mesh.Mesh
}

// NewBasis registers the basis program with programs and builds the rod mesh.
func NewBasis(programs *shader.Manager) (*Basis, error) {
	program, err := programs.CreateAndRegister("basis", shader.Files{Vertex: "basis.vert", Fragment: "basis.frag"})
	if err != nil {
		return nil, fmt.Errorf("basis: %w", err)
	}
	md, err := shapes.Sphere(1, 8, 4)
	if err != nil {
		return nil, fmt.Errorf("basis: %w", err)
	}
	rod, err := mesh.Upload("basis rod", md)
	if err != nil {
		return nil, err
	}
	return &Basis{program: program, rod: rod}, nil
}

// AxisTransforms returns the model matrices of the three rods for a frame
// given by world. Each rod runs from the origin to length along its axis.
func AxisTransforms(world math.Mat4, thickness, length float32) [3]math.Mat4 {
	half := length / 2
	r := thickness / 2
	return [3]math.Mat4{
		world.Mul(math.Translate(half, 0, 0)).Mul(math.Scale(half, r, r)),
		world.Mul(math.Translate(0, half, 0)).Mul(math.Scale(r, half, r)),
		world.Mul(math.Translate(0, 0, half)).Mul(math.Scale(r, r, half)),
	}
}

var axisColors = [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Render draws the axes of world.
func (b *Basis) Render(worldToClip, world math.Mat4, thickness, length float32) {
	program := b.program.ID()
	if program == 0 {
		return
	}
	gl.UseProgram(program)
	gl.UniformMatrix4fv(shader.GetUniform(program, "vertex_world_to_clip"), 1, false, worldToClip.Ptr())
	for i, m := range AxisTransforms(world, thickness, length) {
		gl.UniformMatrix4fv(shader.GetUniform(program, "vertex_model_to_world"), 1, false, m.Ptr())
		c := axisColors[i]
		gl.Uniform3f(shader.GetUniform(program, "color"), c[0], c[1], c[2])
		b.rod.Draw()
	}
	gl.UseProgram(0)
}

// Destroy releases the rod mesh.
func (b *Basis) Destroy() {
	b.rod.Destroy()
}
