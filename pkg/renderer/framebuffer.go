package renderer

import (
	"image"
	"image/color"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/texture"
)

// Pixel holds the running arithmetic mean of the radiance samples taken
// for one pixel, so the stored color is always the current estimate.
type Pixel struct {
	Color   core.Vec3
	Samples int
}

// AddSample folds a new radiance sample into the running mean:
// mean' = (mean·n + sample) / (n+1).
func (p *Pixel) AddSample(c core.Vec3) {
	n := float64(p.Samples)
	p.Color = p.Color.Multiply(n).Add(c).Multiply(1 / (n + 1))
	p.Samples++
}

// Framebuffer is the shared pixel store written by the render workers.
// Tiles partition the image, so concurrent writers never touch the same
// pixel and no locking is needed.
type Framebuffer struct {
	width, height int
	pixels        []Pixel
}

// NewFramebuffer creates a zeroed framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
}

// Width returns the image width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the image height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Pixel returns the pixel at (x, y) for in-place accumulation.
func (fb *Framebuffer) Pixel(x, y int) *Pixel {
	return &fb.pixels[y*fb.width+x]
}

// ToTexture copies the linear radiance estimates into a texture with
// alpha one. No tone mapping is applied, so the result is suitable for
// the raw float image format.
func (fb *Framebuffer) ToTexture() *texture.Texture {
	t := texture.New(fb.width, fb.height)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.Pixel(x, y).Color
			t.Write(x, y, core.NewVec4(c.X, c.Y, c.Z, 1))
		}
	}
	return t
}

// ToImage converts the radiance estimates to an 8-bit image: clamp to
// [0,1], gamma correct, quantize.
func (fb *Framebuffer) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.Pixel(x, y).Color.Clamp(0, 1).GammaCorrect(gamma)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X*255 + 0.5),
				G: uint8(c.Y*255 + 0.5),
				B: uint8(c.Z*255 + 0.5),
				A: 255,
			})
		}
	}
	return img
}
