// Package scene holds the shaded primitive list and resolves rays
// against it. Intersection results are returned as an explicit tagged
// value rather than dispatched through hit callbacks, and shadow
// queries are expressed as a traversal policy.
package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
)

// Policy selects the traversal semantics of an intersection query.
type Policy int

const (
	// Closest finds the nearest hit along the ray.
	Closest Policy = iota
	// StopAtFirst stops at the first non-discarded hit. Hits on
	// emissive materials are discarded and traversal continues, which
	// makes light geometry transparent to shadow rays.
	StopAtFirst
)

// Hit is the result of a successful intersection query: the surface
// attribute interpolated in object space, the material, and the
// geometry-to-world transform the shader applies itself.
type Hit struct {
	Point         core.SurfacePoint
	Material      *material.Material
	ObjectToWorld core.Transform
	T             float64
}

// Primitive pairs geometry with its material and world placement.
type Primitive struct {
	Geometry      Geometry
	Material      *material.Material
	ObjectToWorld core.Transform

	worldToObject core.Transform
	worldBounds   core.AABB
}

// worldBox transforms an object-space AABB by taking the bounds of its
// eight transformed corners.
func worldBox(box core.AABB, t core.Transform) core.AABB {
	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{box.Minimum.X, box.Maximum.X} {
		for _, y := range []float64{box.Minimum.Y, box.Maximum.Y} {
			for _, z := range []float64{box.Minimum.Z, box.Maximum.Z} {
				corners = append(corners, t.ApplyPoint(core.NewVec3(x, y, z)))
			}
		}
	}
	return core.NewAABBFromPoints(corners...)
}

// Scene is an append-only list of shaded primitives plus the light
// list. The integrators never mutate it.
type Scene struct {
	primitives []*Primitive
	lights     []lights.Light
	bvh        *bvhNode
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a primitive. The transform places the geometry in the
// world; it does not need to be rigid.
func (s *Scene) Add(geometry Geometry, mat *material.Material, objectToWorld core.Transform) {
	s.primitives = append(s.primitives, &Primitive{
		Geometry:      geometry,
		Material:      mat,
		ObjectToWorld: objectToWorld,
		worldToObject: objectToWorld.Inverse(),
		worldBounds:   worldBox(geometry.BoundingBox(), objectToWorld),
	})
	s.bvh = nil // rebuilt lazily on the next query
}

// AddLight appends a light source.
func (s *Scene) AddLight(l lights.Light) {
	s.lights = append(s.lights, l)
}

// Lights returns the light list.
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// PrimitiveCount returns the number of primitives added so far.
func (s *Scene) PrimitiveCount() int {
	return len(s.primitives)
}

// Intersect resolves a ray against the scene under the given traversal
// policy. Rays are moved into each candidate's object space; the
// returned attribute stays in object space, paired with the transform
// needed to shade in world space.
func (s *Scene) Intersect(ray core.Ray, policy Policy) (Hit, bool) {
	if s.bvh == nil && len(s.primitives) > 0 {
		s.bvh = buildBVH(append([]*Primitive(nil), s.primitives...), 0)
	}
	if s.bvh == nil {
		return Hit{}, false
	}

	switch policy {
	case StopAtFirst:
		return s.bvh.anyHit(ray)
	default:
		return s.bvh.closestHit(ray, ray.TMax)
	}
}

// Occluded reports whether any non-emissive occluder blocks the ray.
func (s *Scene) Occluded(ray core.Ray) bool {
	_, hit := s.Intersect(ray, StopAtFirst)
	return hit
}

// intersectPrimitive moves the ray into object space and runs the
// geometry test. The object-space direction is not renormalized, so the
// returned t is valid in the world parametrization as well.
func intersectPrimitive(p *Primitive, ray core.Ray, tMax float64) (Hit, bool) {
	local := p.worldToObject.ApplyRay(ray)
	local.TMax = tMax

	point, t, ok := p.Geometry.Intersect(local)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Point:         point,
		Material:      p.Material,
		ObjectToWorld: p.ObjectToWorld,
		T:             t,
	}, true
}
