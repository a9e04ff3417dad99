// Package mesh loads Wavefront OBJ geometry and uploads it to the GPU.
package mesh

// Vertex is an interleaved position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh is an unindexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Bounds   Bounds
}

// Bounds is the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	m.Bounds = Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			m.Bounds.Min[i] = min(m.Bounds.Min[i], v.Position[i])
			m.Bounds.Max[i] = max(m.Bounds.Max[i], v.Position[i])
		}
	}
}
