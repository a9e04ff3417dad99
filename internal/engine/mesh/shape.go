package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/bodyfield/internal/engine/render"
)

// Shape is a mesh resident on the GPU. It implements render.Drawable.
type Shape struct {
	vao, vbo    uint32
	vertexCount int32
	bounds      Bounds
}

// Upload copies m into a new vertex array. Requires a current GL context.
func Upload(m *Mesh) *Shape {
	s := &Shape{vertexCount: int32(len(m.Vertices)), bounds: m.Bounds}
	if len(m.Vertices) == 0 {
		return s
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(render.AttribPosition, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(render.AttribPosition)
	// Normal
	gl.VertexAttribPointerWithOffset(render.AttribNormal, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(render.AttribNormal)

	gl.BindVertexArray(0)
	return s
}

// Bounds returns the bounding box of the uploaded mesh.
func (s *Shape) Bounds() Bounds {
	return s.bounds
}

// Draw issues the draw call. Uniforms must already be set on b.
func (s *Shape) Draw(_ render.Backend) {
	if s.vao == 0 {
		return
	}
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)
	gl.BindVertexArray(0)
}

// Release frees GPU resources.
func (s *Shape) Release() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
}
