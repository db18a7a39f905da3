package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Minimum Vec3
	Maximum Vec3
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(minimum, maximum Vec3) AABB {
	return AABB{Minimum: minimum, Maximum: maximum}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		lo.Z = math.Min(lo.Z, p.Z)

		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		hi.Z = math.Max(hi.Z, p.Z)
	}
	return AABB{Minimum: lo, Maximum: hi}
}

// Extend returns an AABB grown to include the point
func (b AABB) Extend(p Vec3) AABB {
	return b.Union(AABB{Minimum: p, Maximum: p})
}

// Union returns an AABB that bounds both boxes
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Minimum: Vec3{
			X: math.Min(b.Minimum.X, other.Minimum.X),
			Y: math.Min(b.Minimum.Y, other.Minimum.Y),
			Z: math.Min(b.Minimum.Z, other.Minimum.Z),
		},
		Maximum: Vec3{
			X: math.Max(b.Maximum.X, other.Maximum.X),
			Y: math.Max(b.Maximum.Y, other.Maximum.Y),
			Z: math.Max(b.Maximum.Z, other.Maximum.Z),
		},
	}
}

// Center returns the centroid of the box
func (b AABB) Center() Vec3 {
	return b.Minimum.Add(b.Maximum).Multiply(0.5)
}

// LongestAxis returns the axis (0=x, 1=y, 2=z) with the largest extent
func (b AABB) LongestAxis() int {
	extent := b.Maximum.Subtract(b.Minimum)
	if extent.X >= extent.Y && extent.X >= extent.Z {
		return 0
	}
	if extent.Y >= extent.Z {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects the box within [tMin, tMax] using the
// slab method.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, direction float64
		switch axis {
		case 0:
			lo, hi = b.Minimum.X, b.Maximum.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi = b.Minimum.Y, b.Maximum.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			lo, hi = b.Minimum.Z, b.Maximum.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < 1e-12 {
			// Parallel to the slab: miss unless the origin lies inside it
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invD := 1.0 / direction
		t1 := (lo - origin) * invD
		t2 := (hi - origin) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
