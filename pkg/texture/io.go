package texture

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/lumen-render/lumen/pkg/core"
)

// The persisted image format is a flat little-endian binary layout:
// uint32 width, uint32 height, then width*height RGBA records of four
// float32 channels in row-major, top-to-bottom order. No magic, no
// version, no compression.

// Write serializes the texture to w.
func Write(w io.Writer, t *Texture) error {
	header := [2]uint32{uint32(t.width), uint32(t.height)}
	if err := binary.Write(w, binary.LittleEndian, header[:]); err != nil {
		return fmt.Errorf("%w: writing image header: %v", core.ErrIO, err)
	}
	if err := binary.Write(w, binary.LittleEndian, t.texels); err != nil {
		return fmt.Errorf("%w: writing image pixels: %v", core.ErrIO, err)
	}
	return nil
}

// Read deserializes a texture from r.
func Read(r io.Reader) (*Texture, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, header[:]); err != nil {
		return nil, fmt.Errorf("%w: reading image header: %v", core.ErrIO, err)
	}

	t := New(int(header[0]), int(header[1]))
	if err := binary.Read(r, binary.LittleEndian, t.texels); err != nil {
		return nil, fmt.Errorf("%w: reading image pixels: %v", core.ErrIO, err)
	}
	return t, nil
}

// Save writes the texture to a file in the flat binary format.
func Save(path string, t *Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	return nil
}

// Load reads a texture from a file in the flat binary format.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	defer f.Close()

	return Read(f)
}

// LoadImage decodes a PNG or JPEG file into a texture. Channel values
// are mapped to [0, 1]; alpha is preserved.
func LoadImage(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIO, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", core.ErrIO, path, err)
	}

	bounds := img.Bounds()
	t := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			t.Write(x, y, core.NewVec4(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
				float64(a)/65535.0,
			))
		}
	}
	return t, nil
}
