package mesh

import "github.com/lumen-render/lumen/pkg/core"

// Subdivide performs one step of uniform triangle refinement: each
// source triangle is split into four by inserting edge midpoints
// (position, normal and texture coordinate blended at weight 1/2). The
// six vertices of every refined triangle are emitted per triangle, not
// shared with neighbors, so a mesh with T triangles yields exactly
// 6T vertices and 4T triangles. Callers that want connectivity back
// weld afterwards. Non-triangle meshes are returned as a clone.
func (m *Mesh) Subdivide() *Mesh {
	if m.Topology != Triangles {
		return m.Clone()
	}

	triangleCount := m.PrimitiveCount()
	vertices := make([]core.SurfacePoint, 0, triangleCount*6)
	indices := make([]int, 0, triangleCount*12)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]

		ab := core.Midpoint(a, b)
		bc := core.Midpoint(b, c)
		ca := core.Midpoint(c, a)

		base := len(vertices)
		vertices = append(vertices, a, b, c, ab, bc, ca)

		// Corner triangles keep the source winding; the center
		// triangle connects the three midpoints.
		indices = append(indices,
			base+0, base+3, base+5, // a, ab, ca
			base+3, base+1, base+4, // ab, b, bc
			base+5, base+4, base+2, // ca, bc, c
			base+3, base+4, base+5, // ab, bc, ca
		)
	}

	return &Mesh{Vertices: vertices, Indices: indices, Topology: Triangles}
}
