// Package node implements the scene graph: geometry, a shader program,
// textures, a local transform and children.
package node

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/bonobo-labs/internal/engine/mesh"
	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// UniformFunc sets program-specific uniforms right before drawing.
type UniformFunc func(program uint32)

// Texture is a texture bound to a named sampler uniform.
type Texture struct {
	Name   string // sampler uniform; "has_<Name>" is set to 1
	ID     uint32
	Target uint32 // gl.TEXTURE_2D or gl.TEXTURE_CUBE_MAP
}

// Node is one element of the scene graph.
type Node struct {
	Name      string
	Transform Transform
	Visible   bool

	mesh     *mesh.Mesh
	program  *shader.Program
	uniforms UniformFunc
	textures []Texture
	children []*Node
}

// New creates a visible node with an identity transform.
func New(name string) *Node {
	return &Node{Name: name, Transform: Identity(), Visible: true}
}

// SetGeometry sets the mesh drawn by this node.
func (n *Node) SetGeometry(m *mesh.Mesh) { n.mesh = m }

// SetProgram sets the program and its uniform callback. The node keeps the
// *Program so it follows shader reloads.
func (n *Node) SetProgram(p *shader.Program, uniforms UniformFunc) {
	n.program = p
	n.uniforms = uniforms
}

// Program returns the node's program.
func (n *Node) Program() *shader.Program { return n.program }

// samplerNames collects every sampler bound on any node, so draw can clear
// the has_<name> flags a program kept from the previous node.
var samplerNames = map[string]struct{}{}

// AddTexture binds a texture to the sampler called name. Adding a name
// twice replaces the earlier texture.
func (n *Node) AddTexture(name string, id uint32, target uint32) {
	samplerNames[name] = struct{}{}
	for i := range n.textures {
		if n.textures[i].Name == name {
			n.textures[i] = Texture{Name: name, ID: id, Target: target}
			return
		}
	}
	n.textures = append(n.textures, Texture{Name: name, ID: id, Target: target})
}

// Textures returns the bound textures in unit order.
func (n *Node) Textures() []Texture { return n.textures }

// AddChild attaches c below n.
func (n *Node) AddChild(c *Node) { n.children = append(n.children, c) }

// Children returns the attached nodes.
func (n *Node) Children() []*Node { return n.children }

// World returns the node's world matrix under parent.
func (n *Node) World(parent math.Mat4) math.Mat4 {
	return parent.Mul(n.Transform.Matrix())
}

// Render draws n and its children.
func (n *Node) Render(worldToClip, parent math.Mat4) {
	if !n.Visible {
		return
	}
	world := n.World(parent)
	n.draw(worldToClip, world)
	for _, c := range n.children {
		c.Render(worldToClip, world)
	}
}

func (n *Node) draw(worldToClip, world math.Mat4) {
	if n.mesh == nil {
		return
	}
	program := n.program.ID()
	if program == 0 {
		return
	}

	gl.UseProgram(program)

	normal := world.NormalMatrix()
	gl.UniformMatrix4fv(shader.GetUniform(program, "vertex_model_to_world"), 1, false, world.Ptr())
	gl.UniformMatrix4fv(shader.GetUniform(program, "normal_model_to_world"), 1, false, normal.Ptr())
	gl.UniformMatrix4fv(shader.GetUniform(program, "vertex_world_to_clip"), 1, false, worldToClip.Ptr())

	for name := range samplerNames {
		gl.Uniform1i(shader.GetUniform(program, "has_"+name), 0)
	}
	for i, tex := range n.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(tex.Target, tex.ID)
		gl.Uniform1i(shader.GetUniform(program, tex.Name), int32(i))
		gl.Uniform1i(shader.GetUniform(program, "has_"+tex.Name), 1)
	}

	if n.uniforms != nil {
		n.uniforms(program)
	}

	n.mesh.Draw()

	for i, tex := range n.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(tex.Target, 0)
	}
	gl.UseProgram(0)
}
