package mesh

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// SurfaceFunc maps (u, v) over [0,1]² to a position in object space.
type SurfaceFunc func(u, v float64) core.Vec3

// CurveFunc maps u over [0,1] to a profile position in object space.
type CurveFunc func(u float64) core.Vec3

// Parametric evaluates f over a regular (slices+1) x (stacks+1) grid and
// triangulates the resulting quads. The diagonal of each quad alternates
// in a checkerboard pattern based on (i+j) parity so the triangulation
// has no directional bias. Vertex UVs are the parameter values; normals
// are estimated from the generated triangles.
func Parametric(slices, stacks int, f SurfaceFunc) *Mesh {
	cols := slices + 1
	rows := stacks + 1

	vertices := make([]core.SurfacePoint, 0, cols*rows)
	for j := 0; j < rows; j++ {
		v := float64(j) / float64(stacks)
		for i := 0; i < cols; i++ {
			u := float64(i) / float64(slices)
			vertices = append(vertices, core.SurfacePoint{
				Position: f(u, v),
				UV:       core.NewVec2(u, v),
			})
		}
	}

	indices := make([]int, 0, slices*stacks*6)
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			v00 := j*cols + i
			v10 := v00 + 1
			v01 := v00 + cols
			v11 := v01 + 1

			if (i+j)%2 == 0 {
				indices = append(indices,
					v00, v10, v11,
					v00, v11, v01,
				)
			} else {
				indices = append(indices,
					v00, v10, v01,
					v10, v11, v01,
				)
			}
		}
	}

	m := &Mesh{Vertices: vertices, Indices: indices, Topology: Triangles}
	m.ComputeNormals()
	return m
}

// Extrude sweeps a profile curve along a direction: f(u,v) = g(u) + direction*v.
func Extrude(slices, stacks int, g CurveFunc, direction core.Vec3) *Mesh {
	return Parametric(slices, stacks, func(u, v float64) core.Vec3 {
		return g(u).Add(direction.Multiply(v))
	})
}

// Revolve rotates a profile curve a full turn around an axis through the
// origin: f(u,v) = rotate(g(u), v*2π, axis).
func Revolve(slices, stacks int, g CurveFunc, axis core.Vec3) *Mesh {
	return Parametric(slices, stacks, func(u, v float64) core.Vec3 {
		rotation := core.RotateAxis(axis, v*2*math.Pi)
		return rotation.ApplyPoint(g(u))
	})
}

// Loft blends linearly between two profile curves: f(u,v) = lerp(g0(u), g1(u), v).
func Loft(slices, stacks int, g0, g1 CurveFunc) *Mesh {
	return Parametric(slices, stacks, func(u, v float64) core.Vec3 {
		return g0(u).Lerp(g1(u), v)
	})
}
