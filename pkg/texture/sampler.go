package texture

import (
	"fmt"
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// WrapMode controls how texel coordinates outside the texture resolve.
type WrapMode int

const (
	// Border returns transparent black outside the texture.
	Border WrapMode = iota
	// Repeat tiles the texture.
	Repeat
	// Clamp extends the edge texels.
	Clamp
)

// FilterMode controls texel reconstruction.
type FilterMode int

const (
	// Point snaps to the nearest texel.
	Point FilterMode = iota
	// Linear blends the four texels straddling the query coordinate.
	Linear
)

// Sampler pairs a wrap mode with a filter mode. One sampler is shared by
// all maps of a material.
type Sampler struct {
	Wrap   WrapMode
	Filter FilterMode
}

// Sample reads the texture at the normalized coordinate uv in [0,1]².
// Unrecognized filter or wrap modes fail with ErrOutOfRange.
func (s Sampler) Sample(t *Texture, uv core.Vec2) (core.Vec4, error) {
	switch s.Filter {
	case Point:
		x := int(math.Floor(uv.X * float64(t.Width())))
		y := int(math.Floor(uv.Y * float64(t.Height())))
		return s.texel(t, x, y)

	case Linear:
		// Texel centers sit at half-integer coordinates.
		fx := uv.X*float64(t.Width()) - 0.5
		fy := uv.Y*float64(t.Height()) - 0.5
		x0 := int(math.Floor(fx))
		y0 := int(math.Floor(fy))
		tx := fx - float64(x0)
		ty := fy - float64(y0)

		c00, err := s.texel(t, x0, y0)
		if err != nil {
			return core.Vec4{}, err
		}
		c10, _ := s.texel(t, x0+1, y0)
		c01, _ := s.texel(t, x0, y0+1)
		c11, _ := s.texel(t, x0+1, y0+1)

		top := c00.Lerp(c10, tx)
		bottom := c01.Lerp(c11, tx)
		return top.Lerp(bottom, ty), nil

	default:
		return core.Vec4{}, fmt.Errorf("%w: filter mode %d", core.ErrOutOfRange, s.Filter)
	}
}

// texel resolves a single integer texel coordinate through the wrap mode.
func (s Sampler) texel(t *Texture, x, y int) (core.Vec4, error) {
	w, h := t.Width(), t.Height()

	switch s.Wrap {
	case Border:
		if x < 0 || x >= w || y < 0 || y >= h {
			return core.Vec4{}, nil
		}
	case Repeat:
		x = ((x % w) + w) % w
		y = ((y % h) + h) % h
	case Clamp:
		x = max(0, min(w-1, x))
		y = max(0, min(h-1, y))
	default:
		return core.Vec4{}, fmt.Errorf("%w: wrap mode %d", core.ErrOutOfRange, s.Wrap)
	}

	return t.Read(x, y), nil
}
