package integrator

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/scene"
)

// DirectLighting is the Whitted-style integrator: explicit shadow-ray
// sampling of every light plus recursive tracing of the material's
// specular impulses.
type DirectLighting struct {
	config Config
}

// NewDirectLighting creates a direct-lighting integrator.
func NewDirectLighting(config Config) *DirectLighting {
	return &DirectLighting{config: config}
}

// RayColor sums the independently recursed contribution of every light
// and clamps each channel before the result reaches the pixel store.
func (dl *DirectLighting) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	var color core.Vec3
	for _, light := range sc.Lights() {
		color = color.Add(dl.trace(ray, sc, light, dl.config.Bounces))
	}
	if dl.config.MaxValue > 0 {
		color = color.Clamp(0, dl.config.MaxValue)
	}
	return color
}

// trace computes one light's contribution along the ray with the given
// remaining bounce budget.
func (dl *DirectLighting) trace(ray core.Ray, sc *scene.Scene, light lights.Light, bounces int) core.Vec3 {
	hit, ok := sc.Intersect(ray, scene.Closest)
	if !ok {
		return core.Vec3{}
	}

	sp := worldSurfacePoint(hit)
	wOut := ray.Direction.Normalize().Negate()

	lightDir, distance, intensity := light.Sample(sp.Position)

	shadowOrigin := sp.Position.Add(sp.Normal.Multiply(dl.config.ShadowEpsilon))
	shadowRay := core.NewRay(shadowOrigin, lightDir, 0, distance-dl.config.ShadowEpsilon)
	shadowed := sc.Occluded(shadowRay)

	cosLight := math.Max(0, sp.Normal.Dot(lightDir))
	direct := hit.Material.Emissive.Add(
		hit.Material.EvalBRDF(sp, wOut, lightDir).
			MultiplyVec(intensity).
			Multiply(cosLight / (distance * distance)))
	if shadowed {
		direct = direct.Multiply(dl.config.ShadowAttenuation)
	}

	color := direct

	// Specular continuation: recurse along every impulse. Diffuse
	// materials have none, so this terminates on its own.
	if bounces > 0 {
		for _, impulse := range hit.Material.Impulses(sp, wOut) {
			origin := sp.Position.Add(impulse.Direction.Multiply(dl.config.ShadowEpsilon))
			child := core.NewRay(origin, impulse.Direction, 0, math.Inf(1))
			color = color.Add(dl.trace(child, sc, light, bounces-1).MultiplyVec(impulse.Ratio))
		}
	}

	return color
}
