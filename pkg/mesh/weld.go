package mesh

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// gridCell identifies a cubical cell of the welding grid.
type gridCell struct {
	x, y, z int64
}

func cellOf(p core.Vec3, epsilon float64) gridCell {
	return gridCell{
		x: int64(math.Floor(p.X / epsilon)),
		y: int64(math.Floor(p.Y / epsilon)),
		z: int64(math.Floor(p.Z / epsilon)),
	}
}

// Weld merges vertices whose positions fall into the same cubical cell
// of a regular grid with side epsilon, producing a new mesh whose
// vertex list keeps first-seen order and whose indices are remapped
// through the cell table. This is a lossy spatial hash, not a true
// epsilon-ball merge: two points closer than epsilon but on opposite
// sides of a cell boundary are not merged. Epsilon must be positive.
func (m *Mesh) Weld(epsilon float64) *Mesh {
	remap := make([]int, len(m.Vertices))
	cellToIndex := make(map[gridCell]int, len(m.Vertices))
	var vertices []core.SurfacePoint

	for i, v := range m.Vertices {
		cell := cellOf(v.Position, epsilon)
		if idx, seen := cellToIndex[cell]; seen {
			remap[i] = idx
			continue
		}
		idx := len(vertices)
		vertices = append(vertices, v)
		cellToIndex[cell] = idx
		remap[i] = idx
	}

	indices := make([]int, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = remap[idx]
	}

	return &Mesh{Vertices: vertices, Indices: indices, Topology: m.Topology}
}
