package integrator

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/scene"
)

// PathTracing is the progressive unidirectional path tracer: one
// stochastic path per pixel sample, emissive surfaces as the only light
// transport endpoints, throughput compounding multiplicatively along
// the path.
type PathTracing struct {
	config Config
}

// NewPathTracing creates a path-tracing integrator.
func NewPathTracing(config Config) *PathTracing {
	return &PathTracing{config: config}
}

// RayColor traces a single path for the ray.
func (pt *PathTracing) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.trace(ray, sc, sampler, core.NewVec3(1, 1, 1), pt.config.Bounces)
}

// trace extends the path by one vertex. importance is the path
// throughput accumulated so far; a miss contributes zero radiance.
func (pt *PathTracing) trace(ray core.Ray, sc *scene.Scene, sampler core.Sampler, importance core.Vec3, bounces int) core.Vec3 {
	hit, ok := sc.Intersect(ray, scene.Closest)
	if !ok {
		return core.Vec3{}
	}

	sp := worldSurfacePoint(hit)
	wOut := ray.Direction.Normalize().Negate()

	color := importance.MultiplyVec(hit.Material.Emissive)

	if bounces > 0 {
		result := hit.Material.Scatter(sp, wOut, sampler)
		if result.Density > 0 && !result.Ratio.IsZero() {
			// Ratios carry 1/cos and so does the impulse selection
			// density, so ratio/density already accounts for the
			// projected-area factor. A perfect mirror passes radiance
			// through unattenuated: ratio/density = 1.
			next := importance.MultiplyVec(result.Ratio).Multiply(1 / result.Density)

			origin := sp.Position.Add(result.Direction.Normalize().Multiply(pt.config.ShadowEpsilon))
			child := core.NewRay(origin, result.Direction, 0, math.Inf(1))
			color = color.Add(pt.trace(child, sc, sampler, next, bounces-1))
		}
	}

	return color
}
