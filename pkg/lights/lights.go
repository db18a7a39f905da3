// Package lights provides the light sources sampled explicitly by the
// direct-lighting integrator.
package lights

import "github.com/lumen-render/lumen/pkg/core"

// Light is a source the integrator can sample a direction toward.
type Light interface {
	// Sample returns the unit direction from the shading point to the
	// light, the distance, and the light's radiant intensity. The
	// integrator applies the inverse-square falloff itself.
	Sample(from core.Vec3) (direction core.Vec3, distance float64, intensity core.Vec3)
}

// PointLight is an isotropic point source.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light.
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample implements Light.
func (l *PointLight) Sample(from core.Vec3) (core.Vec3, float64, core.Vec3) {
	toLight := l.Position.Subtract(from)
	distance := toLight.Length()
	return toLight.Multiply(1 / distance), distance, l.Intensity
}
