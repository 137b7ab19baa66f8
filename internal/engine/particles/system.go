package particles

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/engine/shader"
	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/pkg/math"
)

// Attribute locations read by both particle shaders.
const (
	attrPosition = 0
	attrVelocity = 1
	attrColor    = 2
	attrLifetime = 3
)

// System holds two particle buffers and alternates between them: each update
// reads one and captures into the other, and rendering reads the buffer that
// was just written.
type System struct {
	update *shader.Program
	render *shader.Program

	count    int32
	vbo      [2]uint32
	tfo      [2]uint32
	updateVA [2]uint32
	renderVA [2]uint32
	current  int

	Emitter Emitter
	Size    float32
	time    float32
}

// NewSystem uploads the initial particles and builds the feedback objects.
func NewSystem(update, render *shader.Program, e Emitter, initial []Particle) (*System, error) {
	if len(initial) == 0 {
		return nil, fmt.Errorf("particle system: no particles")
	}
	s := &System{
		update:  update,
		render:  render,
		count:   int32(len(initial)),
		Emitter: e,
		Size:    0.15,
	}

	gl.GenBuffers(2, &s.vbo[0])
	gl.GenTransformFeedbacks(2, &s.tfo[0])
	gl.GenVertexArrays(2, &s.updateVA[0])
	gl.GenVertexArrays(2, &s.renderVA[0])

	size := len(initial) * int(Stride)
	for i := range 2 {
		gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo[i])
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(initial), gl.DYNAMIC_COPY)

		s.bindAttributes(s.updateVA[i], s.vbo[i], 0)
		s.bindAttributes(s.renderVA[i], s.vbo[i], 1)

		gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, s.tfo[i])
		gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, s.vbo[i])
	}
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("particle system created", zap.Int32("count", s.count), zap.Int32("stride", Stride))
	return s, nil
}

func (s *System) bindAttributes(vao, vbo uint32, divisor uint32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	attrs := []struct {
		loc    uint32
		size   int32
		offset uintptr
	}{
		{attrPosition, 3, offPosition},
		{attrVelocity, 3, offVelocity},
		{attrColor, 4, offColor},
		{attrLifetime, 1, offLifetime},
	}
	for _, a := range attrs {
		gl.EnableVertexAttribArray(a.loc)
		gl.VertexAttribPointerWithOffset(a.loc, a.size, gl.FLOAT, false, Stride, a.offset)
		gl.VertexAttribDivisor(a.loc, divisor)
	}
	gl.BindVertexArray(0)
}

// Count returns the number of particles.
func (s *System) Count() int32 { return s.count }

// Update runs the feedback pass, advancing the simulation by dt.
func (s *System) Update(dt float32) {
	prog := s.update.ID()
	if prog == 0 || dt <= 0 {
		return
	}
	s.time += dt
	src, dst := s.current, 1-s.current

	gl.UseProgram(prog)
	gl.Uniform1f(shader.GetUniform(prog, "dt"), dt)
	gl.Uniform1f(shader.GetUniform(prog, "time"), s.time)
	setVec3(prog, "gravity", s.Emitter.Gravity)
	setVec3(prog, "wind", s.Emitter.Wind)
	setVec3(prog, "emitter_origin", s.Emitter.Origin)
	setVec3(prog, "emitter_extent", s.Emitter.Extent)
	gl.Uniform1f(shader.GetUniform(prog, "max_lifetime"), s.Emitter.Lifetime)

	gl.Enable(gl.RASTERIZER_DISCARD)
	gl.BindVertexArray(s.updateVA[src])
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, s.tfo[dst])
	gl.BeginTransformFeedback(gl.POINTS)
	gl.DrawArrays(gl.POINTS, 0, s.count)
	gl.EndTransformFeedback()
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, 0)
	gl.BindVertexArray(0)
	gl.Disable(gl.RASTERIZER_DISCARD)

	s.current = dst
}

// Render draws every particle as a camera facing billboard.
func (s *System) Render(worldToClip math.Mat4, right, up math.Vec3) {
	prog := s.render.ID()
	if prog == 0 {
		return
	}
	gl.UseProgram(prog)
	gl.UniformMatrix4fv(shader.GetUniform(prog, "vertex_world_to_clip"), 1, false, worldToClip.Ptr())
	setVec3(prog, "camera_right", right)
	setVec3(prog, "camera_up", up)
	gl.Uniform1f(shader.GetUniform(prog, "particle_size"), s.Size)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(s.renderVA[s.current])
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, s.count)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Reset replaces the particle contents of both buffers.
func (s *System) Reset(ps []Particle) {
	n := min(int32(len(ps)), s.count)
	if n == 0 {
		return
	}
	for i := range 2 {
		gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo[i])
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, int(n*Stride), gl.Ptr(ps))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	s.time = 0
}

// Destroy releases GPU resources.
func (s *System) Destroy() {
	gl.DeleteVertexArrays(2, &s.updateVA[0])
	gl.DeleteVertexArrays(2, &s.renderVA[0])
	gl.DeleteTransformFeedbacks(2, &s.tfo[0])
	gl.DeleteBuffers(2, &s.vbo[0])
	s.count = 0
}

func setVec3(prog uint32, name string, v math.Vec3) {
	gl.Uniform3f(shader.GetUniform(prog, name), v.X, v.Y, v.Z)
}
