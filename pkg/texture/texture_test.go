package texture

import (
	"errors"
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestTexture_ReadWrite(t *testing.T) {
	tex := New(4, 4)
	tex.Write(2, 1, core.NewVec4(0.25, 0.5, 0.75, 1))

	got := tex.Read(2, 1)
	if got != core.NewVec4(0.25, 0.5, 0.75, 1) {
		t.Errorf("Read: got %v", got)
	}

	// Reads outside the buffer clamp to the edge
	tex.Write(0, 0, core.NewVec4(1, 0, 0, 1))
	if tex.Read(-5, -5) != core.NewVec4(1, 0, 0, 1) {
		t.Errorf("clamped read: got %v", tex.Read(-5, -5))
	}
}

func checkerboard() *Texture {
	tex := New(2, 2)
	tex.Write(0, 0, core.NewVec4(1, 1, 1, 1))
	tex.Write(1, 1, core.NewVec4(1, 1, 1, 1))
	return tex
}

func TestSampler_PointFilter(t *testing.T) {
	tex := checkerboard()
	s := Sampler{Wrap: Clamp, Filter: Point}

	c, err := s.Sample(tex, core.NewVec2(0.25, 0.25))
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 1 {
		t.Errorf("upper-left texel should be white, got %v", c)
	}

	c, _ = s.Sample(tex, core.NewVec2(0.75, 0.25))
	if c.X != 0 {
		t.Errorf("upper-right texel should be black, got %v", c)
	}
}

func TestSampler_BilinearBlend(t *testing.T) {
	tex := checkerboard()
	s := Sampler{Wrap: Clamp, Filter: Linear}

	// The exact center of a 2x2 checkerboard blends four texels with
	// equal weight: two white, two black.
	c, err := s.Sample(tex, core.NewVec2(0.5, 0.5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(c.X-0.5) > 1e-9 {
		t.Errorf("center blend: got %f, expected 0.5", c.X)
	}

	// On a texel center the blend degenerates to a point sample
	c, _ = s.Sample(tex, core.NewVec2(0.25, 0.25))
	if math.Abs(c.X-1) > 1e-9 {
		t.Errorf("texel center: got %f, expected 1", c.X)
	}
}

func TestSampler_WrapModes(t *testing.T) {
	tex := checkerboard()

	border := Sampler{Wrap: Border, Filter: Point}
	c, err := border.Sample(tex, core.NewVec2(1.5, 0.25))
	if err != nil {
		t.Fatal(err)
	}
	if c != (core.Vec4{}) {
		t.Errorf("border outside: got %v, expected transparent black", c)
	}

	repeat := Sampler{Wrap: Repeat, Filter: Point}
	inside, _ := repeat.Sample(tex, core.NewVec2(0.25, 0.25))
	tiled, _ := repeat.Sample(tex, core.NewVec2(1.25, -0.75))
	if inside != tiled {
		t.Errorf("repeat should tile: %v vs %v", inside, tiled)
	}

	clamp := Sampler{Wrap: Clamp, Filter: Point}
	edge, _ := clamp.Sample(tex, core.NewVec2(0.75, 0.75))
	outside, _ := clamp.Sample(tex, core.NewVec2(5, 5))
	if edge != outside {
		t.Errorf("clamp should extend the edge: %v vs %v", edge, outside)
	}
}

func TestSampler_UnrecognizedModes(t *testing.T) {
	tex := checkerboard()

	badFilter := Sampler{Wrap: Clamp, Filter: FilterMode(42)}
	if _, err := badFilter.Sample(tex, core.NewVec2(0.5, 0.5)); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("bad filter: got %v, expected ErrOutOfRange", err)
	}

	badWrap := Sampler{Wrap: WrapMode(42), Filter: Point}
	if _, err := badWrap.Sample(tex, core.NewVec2(0.5, 0.5)); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("bad wrap: got %v, expected ErrOutOfRange", err)
	}
}
