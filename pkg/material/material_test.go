package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func pointUp() core.SurfacePoint {
	return core.SurfacePoint{
		Position: core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		UV:       core.NewVec2(0.5, 0.5),
	}
}

func TestZeroValueMaterial_IsPureDiffuse(t *testing.T) {
	var m Material
	if w := m.DiffuseWeight(); w != 1 {
		t.Errorf("default diffuse weight: got %f, expected 1", w)
	}
	if m.Glossy != 0 || m.Mirror != 0 || m.Fresnel != 0 {
		t.Error("default material must have no specular lobes")
	}
}

func TestWeightNormalization_NeverZero(t *testing.T) {
	m := &Material{}
	m.SetDiffuseWeight(0)
	if norm := m.WeightNormalization(); norm < weightEpsilon {
		t.Errorf("normalization %g must stay >= epsilon", norm)
	}

	m.SetDiffuseWeight(-2) // hostile configuration
	m.Glossy = -1
	if norm := m.WeightNormalization(); norm < weightEpsilon {
		t.Errorf("normalization %g must stay >= epsilon for negative weights", norm)
	}
}

func TestEvalBRDF_DiffuseTerm(t *testing.T) {
	albedo := core.NewVec3(0.6, 0.4, 0.2)
	m := NewDiffuse(albedo)

	wOut := core.NewVec3(0, 0, 1)
	wIn := core.NewVec3(0, 0.5, 0.5).Normalize()
	got := m.EvalBRDF(pointUp(), wOut, wIn)

	want := albedo.Multiply(1 / math.Pi)
	if got.Subtract(want).Length() > 1e-12 {
		t.Errorf("diffuse BRDF: got %v, expected %v", got, want)
	}
}

func TestEvalBRDF_GlossyLobePeaksAtMirror(t *testing.T) {
	m := NewGlossy(core.Vec3{}, core.NewVec3(1, 1, 1), 64, 0, 1)

	sp := pointUp()
	wOut := core.NewVec3(1, 0, 1).Normalize()
	mirror := core.NewVec3(-1, 0, 1).Normalize()
	offAxis := core.NewVec3(-1, 0.8, 1).Normalize()

	peak := m.EvalBRDF(sp, wOut, mirror)
	off := m.EvalBRDF(sp, wOut, offAxis)
	if peak.X <= off.X {
		t.Errorf("glossy lobe should peak at the mirror direction: %f vs %f", peak.X, off.X)
	}

	// At the peak the half vector is the normal: lobe = (s+2)/2π
	want := (64.0 + 2) / (2 * math.Pi)
	if math.Abs(peak.X-want) > 1e-9 {
		t.Errorf("peak value: got %f, expected %f", peak.X, want)
	}
}

func TestImpulses_NoSpecularColorNoImpulses(t *testing.T) {
	materials := []*Material{
		NewDiffuse(core.NewVec3(1, 1, 1)),
		{Mirror: 1, Fresnel: 1, RefractiveIndex: 1.5}, // weights but no color
	}
	for i, m := range materials {
		if imps := m.Impulses(pointUp(), core.NewVec3(0, 0, 1)); len(imps) != 0 {
			t.Errorf("material %d: got %d impulses, expected none", i, len(imps))
		}
	}
}

func TestImpulses_MirrorReflection(t *testing.T) {
	m := NewMirror(core.NewVec3(0.9, 0.9, 0.9))

	wOut := core.NewVec3(1, 0, 1).Normalize()
	imps := m.Impulses(pointUp(), wOut)
	if len(imps) != 1 {
		t.Fatalf("mirror: got %d impulses, expected 1", len(imps))
	}

	wantDir := core.NewVec3(-1, 0, 1).Normalize()
	if imps[0].Direction.Normalize().Subtract(wantDir).Length() > 1e-9 {
		t.Errorf("reflection direction: got %v, expected %v", imps[0].Direction, wantDir)
	}

	// Ratio = specular * mirrorWeight / normalization / cosine
	cos := wOut.Dot(core.NewVec3(0, 0, 1))
	want := 0.9 / cos
	if math.Abs(imps[0].Ratio.X-want) > 1e-9 {
		t.Errorf("reflection ratio: got %f, expected %f", imps[0].Ratio.X, want)
	}
}

// A mirror-only material carries no refraction index; the reflection
// impulse must still come out finite at exactly normal incidence.
func TestImpulses_MirrorNormalIncidence(t *testing.T) {
	m := NewMirror(core.NewVec3(1, 1, 1))

	wOut := core.NewVec3(0, 0, 1)
	imps := m.Impulses(pointUp(), wOut)
	if len(imps) != 1 {
		t.Fatalf("mirror at normal incidence: got %d impulses, expected 1", len(imps))
	}
	if imps[0].Direction.Subtract(wOut).Length() > 1e-12 {
		t.Errorf("reflection direction: got %v, expected %v", imps[0].Direction, wOut)
	}
	// Mirror weight 1, normalization 1, cos 1
	for _, c := range []float64{imps[0].Ratio.X, imps[0].Ratio.Y, imps[0].Ratio.Z} {
		if math.IsNaN(c) || math.Abs(c-1) > 1e-12 {
			t.Fatalf("reflection ratio: got %v, expected (1,1,1)", imps[0].Ratio)
		}
	}
}

func TestImpulses_GlassSplitsReflectionAndRefraction(t *testing.T) {
	m := NewGlass(core.NewVec3(1, 1, 1), 1.5)

	wOut := core.NewVec3(0.3, 0, 1).Normalize()
	imps := m.Impulses(pointUp(), wOut)
	if len(imps) != 2 {
		t.Fatalf("glass at moderate angle: got %d impulses, expected 2", len(imps))
	}

	// Refracted ray continues into the surface
	if imps[1].Direction.Z >= 0 {
		t.Errorf("refraction should point into the surface, got %v", imps[1].Direction)
	}

	// Snell's law: sin(out) = sin(in) / ior
	sinIn := math.Hypot(wOut.X, wOut.Y)
	refr := imps[1].Direction.Normalize()
	sinOut := math.Hypot(refr.X, refr.Y)
	if math.Abs(sinOut-sinIn/1.5) > 1e-9 {
		t.Errorf("Snell: got sin %f, expected %f", sinOut, sinIn/1.5)
	}
}

func TestImpulses_TotalInternalReflection(t *testing.T) {
	m := NewGlass(core.NewVec3(1, 1, 1), 1.5)

	// Leaving the medium well beyond the critical angle
	wOut := core.NewVec3(0.9, 0, -math.Sqrt(1-0.81)).Normalize()
	imps := m.Impulses(pointUp(), wOut)
	if len(imps) != 1 {
		t.Fatalf("TIR: got %d impulses, expected reflection only", len(imps))
	}

	// F forced to 1: coefficient is (mirror + fresnel) / normalization
	cos := math.Abs(wOut.Z)
	want := (m.Mirror + m.Fresnel) / m.WeightNormalization() / cos
	if math.Abs(imps[0].Ratio.X-want) > 1e-9 {
		t.Errorf("TIR ratio: got %f, expected %f", imps[0].Ratio.X, want)
	}
}

func TestSchlick_MonotoneTowardGrazing(t *testing.T) {
	eta := 1.0 / 1.5
	prev := schlick(1, eta)
	// Integer steps so the loop actually reaches cos = 0
	for i := 99; i >= 0; i-- {
		cos := float64(i) / 100
		f := schlick(cos, eta)
		if f < prev-1e-12 {
			t.Fatalf("Fresnel must not decrease toward grazing: F(%f)=%f < %f", cos, f, prev)
		}
		prev = f
	}
	if prev < 0.999 {
		t.Errorf("grazing reflectance should approach 1, got %f", prev)
	}
}

func TestScatter_MassConservation(t *testing.T) {
	m := NewGlass(core.NewVec3(0.4, 0.5, 0.6), 1.5)
	sp := pointUp()
	wOut := core.NewVec3(0.4, 0.2, 1).Normalize()

	imps := m.Impulses(sp, wOut)
	weights := make([]float64, len(imps))
	totalWeight := 0.0
	for i, impulse := range imps {
		weights[i] = impulse.Ratio.Mean()
		totalWeight += weights[i]
	}
	fallback := (1 - totalWeight) / (2 * math.Pi)

	// Probability mass over the discrete/continuous split sums to one:
	// Σ impulse weights + (1 - Σ impulse weights) = 1.
	if totalWeight+fallback*2*math.Pi-1 > 1e-12 {
		t.Fatalf("mass not conserved: impulses %f, leftover %f", totalWeight, fallback*2*math.Pi)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		result := m.Scatter(sp, wOut, sampler)
		if result.Density <= 0 {
			t.Fatalf("density must be positive, got %g", result.Density)
		}

		matched := math.Abs(result.Density-fallback) < 1e-12
		for _, w := range weights {
			if math.Abs(result.Density-w) < 1e-12 {
				matched = true
			}
		}
		if !matched {
			t.Fatalf("density %g is neither an impulse weight nor the hemisphere fallback", result.Density)
		}
	}
}

func TestScatter_MirrorAlwaysSelectsImpulse(t *testing.T) {
	m := NewMirror(core.NewVec3(1, 1, 1))
	sp := pointUp()
	wOut := core.NewVec3(0, 0, 1) // normal incidence: weight = 1/cos = 1

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	wantDir := core.NewVec3(0, 0, 1)
	for i := 0; i < 50; i++ {
		result := m.Scatter(sp, wOut, sampler)
		if result.Direction.Normalize().Subtract(wantDir).Length() > 1e-9 {
			t.Fatalf("mirror scatter should always return the reflection, got %v", result.Direction)
		}
	}
}

func TestScatter_DiffuseFallbackDensity(t *testing.T) {
	m := NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	sp := pointUp()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	result := m.Scatter(sp, core.NewVec3(0, 0, 1), sampler)
	want := 1 / (2 * math.Pi)
	if math.Abs(result.Density-want) > 1e-12 {
		t.Errorf("hemisphere density: got %f, expected %f", result.Density, want)
	}
	if result.Direction.Dot(sp.Normal) < 0 {
		t.Errorf("fallback direction must stay in the upper hemisphere")
	}
	wantRatio := core.NewVec3(0.5, 0.5, 0.5).Multiply(1 / math.Pi)
	if result.Ratio.Subtract(wantRatio).Length() > 1e-12 {
		t.Errorf("fallback ratio should be the BRDF, got %v", result.Ratio)
	}
}

func TestShadingNormal_Normalizes(t *testing.T) {
	m := NewDiffuse(core.NewVec3(1, 1, 1))
	sp := core.SurfacePoint{Normal: core.NewVec3(0, 0, 7)}
	n := m.ShadingNormal(sp)
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("shading normal must be unit length, got %f", n.Length())
	}
}
