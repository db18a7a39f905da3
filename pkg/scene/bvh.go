package scene

import (
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
)

// bvhNode is a node of the bounding volume hierarchy over primitives.
// Leaves keep a small slice of primitives for linear search.
type bvhNode struct {
	bounds     core.AABB
	left       *bvhNode
	right      *bvhNode
	primitives []*Primitive // non-nil only for leaves
}

// leafThreshold caps the primitive count of a leaf node.
const leafThreshold = 4

// buildBVH recursively splits primitives at the median of the longest
// axis of their combined world bounds.
func buildBVH(primitives []*Primitive, depth int) *bvhNode {
	bounds := primitives[0].worldBounds
	for _, p := range primitives[1:] {
		bounds = bounds.Union(p.worldBounds)
	}

	if len(primitives) <= leafThreshold {
		return &bvhNode{bounds: bounds, primitives: primitives}
	}

	axis := bounds.LongestAxis()
	sort.Slice(primitives, func(i, j int) bool {
		ci := primitives[i].worldBounds.Center()
		cj := primitives[j].worldBounds.Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})

	mid := len(primitives) / 2
	return &bvhNode{
		bounds: bounds,
		left:   buildBVH(primitives[:mid], depth+1),
		right:  buildBVH(primitives[mid:], depth+1),
	}
}

// closestHit finds the nearest hit within the ray range.
func (n *bvhNode) closestHit(ray core.Ray, tMax float64) (Hit, bool) {
	if !n.bounds.Hit(ray, ray.TMin, tMax) {
		return Hit{}, false
	}

	if n.primitives != nil {
		var closest Hit
		found := false
		for _, p := range n.primitives {
			if hit, ok := intersectPrimitive(p, ray, tMax); ok {
				closest = hit
				tMax = hit.T
				found = true
			}
		}
		return closest, found
	}

	var closest Hit
	found := false
	if hit, ok := n.left.closestHit(ray, tMax); ok {
		closest = hit
		tMax = hit.T
		found = true
	}
	if hit, ok := n.right.closestHit(ray, tMax); ok {
		closest = hit
		found = true
	}
	return closest, found
}

// anyHit returns the first non-discarded hit found. Emissive materials
// are discarded so shadow rays pass through light geometry.
func (n *bvhNode) anyHit(ray core.Ray) (Hit, bool) {
	if !n.bounds.Hit(ray, ray.TMin, ray.TMax) {
		return Hit{}, false
	}

	if n.primitives != nil {
		for _, p := range n.primitives {
			hit, ok := intersectPrimitive(p, ray, ray.TMax)
			if ok && hit.Material.Emissive.IsZero() {
				return hit, true
			}
		}
		return Hit{}, false
	}

	if hit, ok := n.left.anyHit(ray); ok {
		return hit, true
	}
	return n.right.anyHit(ray)
}
