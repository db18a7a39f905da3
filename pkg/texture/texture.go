// Package texture provides the 4-channel floating point pixel store used
// for texture maps and rendered frames, wrap/filter sampling over it,
// and its flat binary on-disk format.
package texture

import "github.com/lumen-render/lumen/pkg/core"

// Texel is one stored pixel. Channels are float32 to match the persisted
// format exactly, so write/read round trips are bit-identical.
type Texel struct {
	R, G, B, A float32
}

// Vec4 widens the texel to a float64 color sample.
func (t Texel) Vec4() core.Vec4 {
	return core.NewVec4(float64(t.R), float64(t.G), float64(t.B), float64(t.A))
}

// TexelFromVec4 narrows a color sample to storage precision.
func TexelFromVec4(v core.Vec4) Texel {
	return Texel{R: float32(v.X), G: float32(v.Y), B: float32(v.Z), A: float32(v.W)}
}

// Texture is a width x height pixel buffer in row-major, top-to-bottom
// order. Coordinates for direct access are pixel-indexed, not
// normalized.
type Texture struct {
	width  int
	height int
	texels []Texel
}

// New creates a zeroed texture.
func New(width, height int) *Texture {
	return &Texture{
		width:  width,
		height: height,
		texels: make([]Texel, width*height),
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Read returns the pixel at (x, y). Coordinates outside the buffer are
// clamped to the edge.
func (t *Texture) Read(x, y int) core.Vec4 {
	x = max(0, min(t.width-1, x))
	y = max(0, min(t.height-1, y))
	return t.texels[y*t.width+x].Vec4()
}

// Write stores a pixel at (x, y). Out-of-bounds writes are dropped.
func (t *Texture) Write(x, y int, c core.Vec4) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.texels[y*t.width+x] = TexelFromVec4(c)
}
