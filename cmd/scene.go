package cmd

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/mesh"
	"github.com/lumen-render/lumen/pkg/scene"
	"github.com/lumen-render/lumen/pkg/texture"
)

// buildDemoScene assembles the built-in showcase scene: a revolved vase
// and a lofted ground plane built through the mesh pipeline, plus one
// sphere per material lobe. texturePath optionally maps an image file
// onto the ground plane.
func buildDemoScene(texturePath string) (*scene.Scene, error) {
	sc := scene.New()

	// Ground: loft between two parallel edges
	left := func(u float64) core.Vec3 { return core.NewVec3(-8+16*u, 0, -8) }
	right := func(u float64) core.Vec3 { return core.NewVec3(-8+16*u, 0, 8) }
	ground := mesh.Loft(8, 8, left, right)

	groundMat := material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))
	if texturePath != "" {
		tex, err := texture.LoadImage(texturePath)
		if err != nil {
			return nil, err
		}
		groundMat.DiffuseColor = core.NewVec3(1, 1, 1)
		groundMat.DiffuseMap = tex
		groundMat.MapSampler = texture.Sampler{Wrap: texture.Repeat, Filter: texture.Linear}
	}
	sc.Add(scene.NewMeshGeometry(ground), groundMat, core.Identity())

	// Vase: revolve a flared profile around Y, weld the seam duplicates,
	// smooth with one subdivision round and recompute the averaged normals.
	profile := func(u float64) core.Vec3 {
		radius := 0.6 + 0.35*math.Sin(u*math.Pi)
		return core.NewVec3(radius, 1.8*u, 0)
	}
	vase := mesh.Revolve(12, 24, profile, core.NewVec3(0, 1, 0))
	vase = vase.Subdivide().Weld(1e-4)
	vase.ComputeNormals()
	sc.Add(scene.NewMeshGeometry(vase),
		material.NewGlossy(core.NewVec3(0.3, 0.45, 0.7), core.NewVec3(1, 1, 1), 40, 0.7, 0.3),
		core.Identity())

	// One sphere per specular lobe
	sc.Add(scene.NewSphere(core.NewVec3(0, 0, 0), 1),
		material.NewMirror(core.NewVec3(0.95, 0.95, 0.95)),
		core.Translate(core.NewVec3(-2.4, 1, -1)))
	sc.Add(scene.NewSphere(core.NewVec3(0, 0, 0), 1),
		material.NewGlass(core.NewVec3(1, 1, 1), 1.5),
		core.Translate(core.NewVec3(2.4, 1, 0.5)))
	sc.Add(scene.NewSphere(core.NewVec3(0, 0, 0), 0.5),
		material.NewEmissive(core.NewVec3(8, 7.5, 6.5), core.NewVec3(1, 1, 1)),
		core.Translate(core.NewVec3(0, 4.5, 1)))

	sc.AddLight(lights.NewPointLight(core.NewVec3(0, 4.5, 1), core.NewVec3(30, 28, 24)))
	sc.AddLight(lights.NewPointLight(core.NewVec3(-5, 3, 4), core.NewVec3(10, 10, 12)))

	return sc, nil
}
