// Package mesh implements the triangle geometry processing pipeline:
// construction and validation of indexed meshes, vertex normal
// estimation, welding, topology conversion, uniform subdivision and
// parametric surface generation.
package mesh

import (
	"fmt"

	"github.com/lumen-render/lumen/pkg/core"
)

// Topology is the grouping arity of mesh indices.
type Topology int

const (
	Points    Topology = 1 // one index per primitive
	Lines     Topology = 2 // two indices per primitive
	Triangles Topology = 3 // three indices per primitive
)

// IndexStride returns the number of indices per primitive.
func (t Topology) IndexStride() int {
	return int(t)
}

func (t Topology) String() string {
	switch t {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// Mesh is an ordered sequence of vertices plus an ordered sequence of
// indices grouped per topology. Vertices and indices are treated as
// immutable once constructed: every operation returns a new mesh,
// except ComputeNormals which assigns vertex normals in place.
type Mesh struct {
	Vertices []core.SurfacePoint
	Indices  []int
	Topology Topology
}

// New creates a mesh after validating that the index list length matches
// the topology stride and that every index is in range.
func New(vertices []core.SurfacePoint, indices []int, topology Topology) (*Mesh, error) {
	stride := topology.IndexStride()
	if stride < 1 || stride > 3 {
		return nil, fmt.Errorf("%w: unknown topology %v", core.ErrInvalidArgument, topology)
	}
	if len(indices)%stride != 0 {
		return nil, fmt.Errorf("%w: index count %d is not a multiple of stride %d",
			core.ErrInvalidArgument, len(indices), stride)
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d outside [0, %d)",
				core.ErrInvalidArgument, idx, len(vertices))
		}
	}
	return &Mesh{Vertices: vertices, Indices: indices, Topology: topology}, nil
}

// PrimitiveCount returns the number of primitives in the mesh.
func (m *Mesh) PrimitiveCount() int {
	return len(m.Indices) / m.Topology.IndexStride()
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	vertices := make([]core.SurfacePoint, len(m.Vertices))
	copy(vertices, m.Vertices)
	indices := make([]int, len(m.Indices))
	copy(indices, m.Indices)
	return &Mesh{Vertices: vertices, Indices: indices, Topology: m.Topology}
}

// ComputeNormals estimates per-vertex normals for triangle meshes by
// accumulating the unnormalized cross product of each triangle's edges
// into its three vertices and then normalizing in place. This is the
// single mutating operation on a mesh. Degenerate triangles contribute
// a zero vector; a vertex whose entire accumulation is zero keeps a
// zero normal (the caller must not shade such vertices).
// Non-triangle topologies are left untouched.
func (m *Mesh) ComputeNormals() {
	if m.Topology != Triangles {
		return
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = core.Vec3{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0 := m.Vertices[i0].Position
		edge1 := m.Vertices[i1].Position.Subtract(p0)
		edge2 := m.Vertices[i2].Position.Subtract(p0)
		faceNormal := edge1.Cross(edge2)

		m.Vertices[i0].Normal = m.Vertices[i0].Normal.Add(faceNormal)
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(faceNormal)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(faceNormal)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// ComputeAABB returns the componentwise min/max bounding box over all
// vertex positions.
func (m *Mesh) ComputeAABB() core.AABB {
	positions := make([]core.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
	}
	return core.NewAABBFromPoints(positions...)
}

// Concat returns the disjoint union of two meshes with the same
// topology. Indices of b are offset by the vertex count of a.
func Concat(a, b *Mesh) (*Mesh, error) {
	if a.Topology != b.Topology {
		return nil, fmt.Errorf("%w: cannot concat %v mesh with %v mesh",
			core.ErrInvalidArgument, a.Topology, b.Topology)
	}

	vertices := make([]core.SurfacePoint, 0, len(a.Vertices)+len(b.Vertices))
	vertices = append(vertices, a.Vertices...)
	vertices = append(vertices, b.Vertices...)

	offset := len(a.Vertices)
	indices := make([]int, 0, len(a.Indices)+len(b.Indices))
	indices = append(indices, a.Indices...)
	for _, idx := range b.Indices {
		indices = append(indices, idx+offset)
	}

	return &Mesh{Vertices: vertices, Indices: indices, Topology: a.Topology}, nil
}
