package mesh

import (
	"fmt"

	"github.com/lumen-render/lumen/pkg/core"
)

// ConvertTopology returns a new mesh with the requested index grouping.
//
// Supported conversions:
//   - same topology: identity clone
//   - triangles → lines: each triangle edge is emitted once per adjacent
//     triangle; shared edges are NOT deduplicated
//   - any → points: one index per vertex, identity mapping
//
// Reconstructing triangles from lines or points is ill-posed and fails
// with ErrNotImplemented. Unrecognized targets fail with
// ErrInvalidArgument.
func (m *Mesh) ConvertTopology(target Topology) (*Mesh, error) {
	switch target {
	case m.Topology:
		return m.Clone(), nil

	case Points:
		indices := make([]int, len(m.Vertices))
		for i := range indices {
			indices[i] = i
		}
		vertices := make([]core.SurfacePoint, len(m.Vertices))
		copy(vertices, m.Vertices)
		return &Mesh{Vertices: vertices, Indices: indices, Topology: Points}, nil

	case Lines:
		if m.Topology != Triangles {
			return nil, fmt.Errorf("%w: conversion from %v to %v",
				core.ErrNotImplemented, m.Topology, target)
		}
		indices := make([]int, 0, len(m.Indices)*2)
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
			indices = append(indices, a, b, b, c, c, a)
		}
		vertices := make([]core.SurfacePoint, len(m.Vertices))
		copy(vertices, m.Vertices)
		return &Mesh{Vertices: vertices, Indices: indices, Topology: Lines}, nil

	case Triangles:
		return nil, fmt.Errorf("%w: conversion from %v to %v",
			core.ErrNotImplemented, m.Topology, target)

	default:
		return nil, fmt.Errorf("%w: unknown target topology %v",
			core.ErrInvalidArgument, target)
	}
}
