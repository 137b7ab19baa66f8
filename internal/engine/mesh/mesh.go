// Package mesh uploads shapes.MeshData into GPU buffers.
package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/logger"
	"github.com/Faultbox/bonobo-labs/pkg/math"
	"github.com/Faultbox/bonobo-labs/pkg/shapes"
)

// Attribute locations shared by every shader.
const (
	AttrVertices  uint32 = 0
	AttrNormals   uint32 = 1
	AttrTexCoords uint32 = 2
	AttrTangents  uint32 = 3
	AttrBinormals uint32 = 4

	attrCount = 5
)

// Planar flattens md into one float buffer holding every attribute array
// back to back, and returns the byte offset of each attribute.
func Planar(md *shapes.MeshData) ([]float32, [attrCount]int) {
	var offsets [attrCount]int
	n := md.VertexCount()
	data := make([]float32, 0, n*3*attrCount)
	for i, attr := range [attrCount][]math.Vec3{
		md.Positions, md.Normals, md.TexCoords, md.Tangents, md.Binormals,
	} {
		offsets[i] = len(data) * 4
		for _, v := range attr {
			data = append(data, v.X, v.Y, v.Z)
		}
	}
	return data, offsets
}

// Mesh is geometry resident on the GPU.
type Mesh struct {
	Name       string
	VAO        uint32
	VBO        uint32
	IBO        uint32
	IndexCount int32
	DrawMode   uint32
}

// Upload validates md and creates its VAO, VBO and IBO.
func Upload(name string, md *shapes.MeshData) (*Mesh, error) {
	if err := md.Validate(); err != nil {
		return nil, fmt.Errorf("mesh %s: %w", name, err)
	}
	if md.VertexCount() == 0 || len(md.Indices) == 0 {
		return nil, fmt.Errorf("mesh %s: no geometry", name)
	}

	data, offsets := Planar(md)
	m := &Mesh{Name: name, IndexCount: int32(len(md.Indices)), DrawMode: gl.TRIANGLES}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	for i, off := range offsets {
		gl.VertexAttribPointerWithOffset(uint32(i), 3, gl.FLOAT, false, 0, uintptr(off))
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.GenBuffers(1, &m.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(md.Indices)*4, gl.Ptr(md.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded", zap.String("name", name),
		zap.Int("vertices", md.VertexCount()), zap.Int("triangles", md.TriangleCount()))
	return m, nil
}

// Draw issues the indexed draw call. The caller binds the program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(m.DrawMode, m.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (m *Mesh) Destroy() {
	if m.IBO != 0 {
		gl.DeleteBuffers(1, &m.IBO)
		m.IBO = 0
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
}
