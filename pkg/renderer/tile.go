package renderer

import (
	"image"
	"math/rand"
)

// Tile is a rectangular region of the framebuffer rendered as one unit
// of work. Each tile owns a deterministic random stream so a render is
// reproducible regardless of worker scheduling.
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Random *rand.Rand
}

// NewTile creates a tile with a random stream derived from its ID.
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(tileSeed(id, 0))),
	}
}

// Reseed rewinds the tile's random stream to the start of the given
// pass, keeping streams independent across both tiles and passes.
func (t *Tile) Reseed(pass int) {
	t.Random = rand.New(rand.NewSource(tileSeed(t.ID, pass)))
}

func tileSeed(id, pass int) int64 {
	// +42 keeps tile 0 pass 0 off the degenerate zero seed
	return int64(pass)<<32 | int64(id+42)
}

// NewTileGrid partitions a width x height image into tiles of at most
// tileSize on a side. Edge tiles are clipped to the image bounds, so
// the tiles cover every pixel exactly once.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	id := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(id, image.Rect(x0, y0, x1, y1)))
			id++
		}
	}

	return tiles
}
