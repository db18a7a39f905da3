// Package material implements the four-lobe surface model: Lambertian
// diffuse, Phong-like glossy, perfect mirror and Fresnel dielectric.
// The continuous lobes are exposed through EvalBRDF, the delta lobes
// through Impulses, and Scatter importance-samples across the split.
package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/texture"
)

// weightEpsilon keeps the weight normalization strictly positive so the
// BRDF and impulse ratios stay bounded no matter how the weights were set.
const weightEpsilon = 1e-6

// Material describes how a surface emits and scatters light. Materials
// are immutable value data shared by reference across every primitive
// that uses them; construct one, configure it, then stop mutating.
type Material struct {
	Emissive core.Vec3

	DiffuseColor  core.Vec3
	SpecularColor core.Vec3
	Shininess     float64 // Phong exponent of the glossy lobe
	RefractiveIndex float64

	// Optional texture maps; one sampler is shared by both.
	DiffuseMap *texture.Texture
	BumpMap    *texture.Texture
	MapSampler texture.Sampler

	// Energy weights of the four lobes. The diffuse weight is stored as
	// its complement so the zero value is a pure diffuse material
	// (diffuse 1, everything else 0).
	diffuseInverse float64
	Glossy         float64
	Mirror         float64
	Fresnel        float64
}

// NewDiffuse returns a pure Lambertian material.
func NewDiffuse(color core.Vec3) *Material {
	return &Material{DiffuseColor: color}
}

// NewEmissive returns a diffuse emitter.
func NewEmissive(emit, color core.Vec3) *Material {
	return &Material{Emissive: emit, DiffuseColor: color}
}

// NewMirror returns a perfect mirror with the given reflectance tint.
func NewMirror(specular core.Vec3) *Material {
	m := &Material{SpecularColor: specular, Mirror: 1}
	m.SetDiffuseWeight(0)
	return m
}

// NewGlass returns a Fresnel dielectric with the given refraction index.
func NewGlass(specular core.Vec3, refractiveIndex float64) *Material {
	m := &Material{
		SpecularColor:   specular,
		RefractiveIndex: refractiveIndex,
		Fresnel:         1,
	}
	m.SetDiffuseWeight(0)
	return m
}

// NewGlossy returns a mixed diffuse/Phong material.
func NewGlossy(diffuse, specular core.Vec3, shininess, diffuseWeight, glossyWeight float64) *Material {
	m := &Material{
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
		Glossy:        glossyWeight,
	}
	m.SetDiffuseWeight(diffuseWeight)
	return m
}

// DiffuseWeight returns the diffuse lobe's energy weight.
func (m *Material) DiffuseWeight() float64 {
	return 1 - m.diffuseInverse
}

// SetDiffuseWeight stores the diffuse weight as its complement.
func (m *Material) SetDiffuseWeight(w float64) {
	m.diffuseInverse = 1 - w
}

// WeightNormalization returns max(epsilon, sum of the four lobe
// weights). Every lobe and impulse ratio is divided by this, which
// bounds the material's response regardless of how the weights were
// configured and can never divide by zero.
func (m *Material) WeightNormalization() float64 {
	return math.Max(weightEpsilon, m.DiffuseWeight()+m.Glossy+m.Mirror+m.Fresnel)
}

// diffuseAlbedo returns the diffuse color, modulated by the diffuse map
// when one is attached.
func (m *Material) diffuseAlbedo(uv core.Vec2) core.Vec3 {
	albedo := m.DiffuseColor
	if m.DiffuseMap != nil {
		sample, err := m.MapSampler.Sample(m.DiffuseMap, uv)
		if err == nil {
			albedo = albedo.MultiplyVec(sample.Vec3())
		}
	}
	return albedo
}

// ShadingNormal returns the unit shading normal at the surface point.
// When a bump map is attached its sample, remapped from [0,1] to
// [-1,1], perturbs the geometric normal through an orthonormal basis.
func (m *Material) ShadingNormal(sp core.SurfacePoint) core.Vec3 {
	n := sp.Normal.Normalize()
	if m.BumpMap == nil {
		return n
	}

	sample, err := m.MapSampler.Sample(m.BumpMap, sp.UV)
	if err != nil {
		return n
	}

	local := sample.Vec3().Multiply(2).Subtract(core.NewVec3(1, 1, 1))
	tangent, bitangent := core.OrthonormalBasis(n)
	perturbed := tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(n.Multiply(local.Z))
	return perturbed.Normalize()
}
