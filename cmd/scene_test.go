package cmd

import (
	"errors"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestBuildDemoScene(t *testing.T) {
	sc, err := buildDemoScene("")
	if err != nil {
		t.Fatal(err)
	}
	if sc.PrimitiveCount() != 5 {
		t.Errorf("primitive count: got %d, expected 5", sc.PrimitiveCount())
	}
	if len(sc.Lights()) != 2 {
		t.Errorf("light count: got %d, expected 2", len(sc.Lights()))
	}

	// The vase should be hittable from the front
	ray := core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1), 0.001, 1000)
	if !sc.Occluded(ray) {
		t.Error("ray toward the vase should hit something")
	}
}

func TestBuildDemoScene_MissingTexture(t *testing.T) {
	_, err := buildDemoScene("no-such-file.png")
	if err == nil {
		t.Fatal("missing texture file must fail")
	}
	if !errors.Is(err, core.ErrIO) {
		t.Errorf("expected an IO error kind, got %v", err)
	}
}
