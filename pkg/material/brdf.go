package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Impulse is a discrete (Dirac delta) transport event: a perfect mirror
// reflection or a refraction. The ratio is the per-channel contribution
// per solid angle, already divided by the governing cosine so the
// integrator's cosine factor cancels. Impulses are produced transiently
// per shading query, never stored.
type Impulse struct {
	Direction core.Vec3
	Ratio     core.Vec3
}

// ScatterResult is one sampled outgoing event: either a selected impulse
// (treated as a point mass, Density equal to its selection weight) or a
// direction drawn uniformly from the hemisphere with the continuous BRDF
// evaluated for it.
type ScatterResult struct {
	Direction core.Vec3
	Ratio     core.Vec3
	Density   float64
}

// EvalBRDF evaluates the continuous part of the material: a Lambertian
// diffuse term plus a normalized Phong glossy lobe. The surface point's
// normal must be unit length. wOut points toward the viewer, wIn toward
// the light; both away from the surface.
func (m *Material) EvalBRDF(sp core.SurfacePoint, wOut, wIn core.Vec3) core.Vec3 {
	norm := m.WeightNormalization()
	result := core.Vec3{}

	if w := m.DiffuseWeight(); w > 0 {
		result = result.Add(m.diffuseAlbedo(sp.UV).Multiply(w / norm / math.Pi))
	}

	if m.Glossy > 0 {
		half := wOut.Add(wIn).Normalize()
		cosHalf := math.Max(0, half.Dot(sp.Normal))
		lobe := math.Pow(cosHalf, m.Shininess) * (m.Shininess + 2) / (2 * math.Pi)
		result = result.Add(m.SpecularColor.Multiply(lobe * m.Glossy / norm))
	}

	return result
}

// Impulses enumerates the discrete reflective/refractive events for the
// outgoing direction wOut: at most one reflection and one refraction.
// A material without specular color has none.
func (m *Material) Impulses(sp core.SurfacePoint, wOut core.Vec3) []Impulse {
	if m.SpecularColor.IsZero() {
		return nil
	}

	// Entering or leaving the medium? Flip the normal and invert the
	// relative refraction ratio for rays arriving from inside.
	normal := sp.Normal
	eta := 1.0 / m.RefractiveIndex
	cosOut := normal.Dot(wOut)
	if cosOut < 0 {
		normal = normal.Negate()
		eta = m.RefractiveIndex
		cosOut = -cosOut
	}

	norm := m.WeightNormalization()
	impulses := make([]Impulse, 0, 2)

	// The Fresnel math belongs to the dielectric lobe alone. A
	// mirror-only material has no meaningful refraction index, so
	// evaluating it would poison the reflection coefficient.
	var refracted core.Vec3
	fresnel := 0.0
	if m.Fresnel > 0 {
		// Refract first to learn whether this is total internal reflection.
		refracted = refract(wOut.Negate(), normal, eta)
		fresnel = schlick(cosOut, eta)
		if refracted.IsZero() {
			fresnel = 1 // total internal reflection
		}
	}

	if coeff := (m.Mirror + m.Fresnel*fresnel) / norm; coeff > 0 {
		mirrorDir := normal.Multiply(2 * cosOut).Subtract(wOut)
		impulses = append(impulses, Impulse{
			Direction: mirrorDir,
			Ratio:     m.SpecularColor.Multiply(coeff / cosOut),
		})
	}

	if coeff := m.Fresnel * (1 - fresnel) / norm; coeff > 0 && !refracted.IsZero() {
		cosExit := math.Abs(refracted.Dot(normal))
		impulses = append(impulses, Impulse{
			Direction: refracted,
			Ratio:     m.SpecularColor.Multiply(coeff / cosExit),
		})
	}

	return impulses
}

// Scatter draws one outgoing event. A single uniform number walks the
// impulse list, selecting each impulse with probability equal to the
// mean of its ratio channels (a point mass, not a true density); if none
// is selected the leftover mass falls back to a direction drawn
// uniformly over the hemisphere with the continuous BRDF as ratio.
// Importance sampling happens only across the discrete/continuous
// split, not within the continuous lobe.
func (m *Material) Scatter(sp core.SurfacePoint, wOut core.Vec3, sampler core.Sampler) ScatterResult {
	u := sampler.Get1D()

	totalWeight := 0.0
	for _, impulse := range m.Impulses(sp, wOut) {
		weight := impulse.Ratio.Mean()
		if u < weight {
			return ScatterResult{
				Direction: impulse.Direction,
				Ratio:     impulse.Ratio,
				Density:   weight,
			}
		}
		u -= weight
		totalWeight += weight
	}

	direction := core.SampleUniformHemisphere(sp.Normal, sampler.Get2D())
	return ScatterResult{
		Direction: direction,
		Ratio:     m.EvalBRDF(sp, wOut, direction),
		Density:   (1 - totalWeight) / (2 * math.Pi),
	}
}

// refract bends the incident direction through a surface with the given
// relative refraction ratio via Snell's law. incident points into the
// surface, normal away from it; both unit length. Total internal
// reflection yields the zero vector.
func refract(incident, normal core.Vec3, eta float64) core.Vec3 {
	cosIn := -incident.Dot(normal)
	sin2Out := eta * eta * (1 - cosIn*cosIn)
	if sin2Out > 1 {
		return core.Vec3{}
	}
	cosOut := math.Sqrt(1 - sin2Out)
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosIn - cosOut))
}

// schlick approximates the Fresnel reflectance at the given incident
// cosine for a relative refraction ratio.
func schlick(cosine, eta float64) float64 {
	f0 := (1 - eta) / (1 + eta)
	f0 *= f0
	return f0 + (1-f0)*math.Pow(1-cosine, 5)
}
