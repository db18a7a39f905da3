// Package integrator implements the two light transport algorithms: a
// recursive Whitted-style direct-lighting tracer with explicit light
// sampling, and a progressive unidirectional path tracer. Both are pure
// functions of (ray, remaining bounces): recursion returns accumulated
// color instead of threading a mutable payload between stack frames.
package integrator

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/scene"
)

// Integrator computes the radiance arriving along a camera ray.
type Integrator interface {
	RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3
}

// Config carries the knobs shared by both integrators.
type Config struct {
	// Bounces is the indirect bounce budget per ray.
	Bounces int
	// ShadowEpsilon offsets shadow ray origins along the surface normal
	// to avoid self-intersection.
	ShadowEpsilon float64
	// ShadowAttenuation scales (rather than zeroes) the direct term of
	// shadowed points.
	ShadowAttenuation float64
	// MaxValue clamps each channel of the direct-lighting result before
	// it reaches the pixel store. Non-positive disables the clamp, which
	// is the right choice when writing float images.
	MaxValue float64
}

// DefaultConfig mirrors the historical reference configuration.
func DefaultConfig() Config {
	return Config{
		Bounces:           3,
		ShadowEpsilon:     1e-4,
		ShadowAttenuation: 0.2,
		MaxValue:          1.0,
	}
}

// worldSurfacePoint maps a hit's object-space attribute to world space
// and replaces the normal with the material's unit shading normal
// (bump-mapped when the material carries a bump map).
func worldSurfacePoint(hit scene.Hit) core.SurfacePoint {
	sp := hit.Point.Transform(hit.ObjectToWorld)
	sp.Normal = hit.Material.ShadingNormal(sp)
	return sp
}
