package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"skyview/scene"
)

// Mesh is an uploaded, immutable vertex buffer drawn as a triangle list.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// UploadVertices uploads packed position/color/normal vertices.
// Attribute 0 is position, 1 is color (normalized bytes), 2 is normal.
func UploadVertices(verts []scene.Vertex) *Mesh {
	m := &Mesh{Count: int32(len(verts))}
	if len(verts) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*scene.VertexStride, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, scene.VertexStride, gl.PtrOffset(scene.VertexPositionOffset))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.UNSIGNED_BYTE, true, scene.VertexStride, gl.PtrOffset(scene.VertexColorOffset))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, scene.VertexStride, gl.PtrOffset(scene.VertexNormalOffset))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// UploadPositions uploads a tightly packed xyz position list.
func UploadPositions(positions []float32) *Mesh {
	m := &Mesh{Count: int32(len(positions) / 3)}
	if len(positions) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *Mesh) Draw() {
	if m.VAO == 0 {
		return
	}
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
	gl.BindVertexArray(0)
}

func (m *Mesh) Destroy() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
}
