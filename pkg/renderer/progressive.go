// Package renderer drives the sampling loop: a pinhole camera generates
// rays, an integrator estimates radiance, and a worker pool accumulates
// the estimates into a shared framebuffer tile by tile. Rendering is
// progressive: each pass adds samples to every pixel and the
// framebuffer always holds the current running mean, so intermediate
// results are viewable at any time.
package renderer

import (
	"context"
	"time"

	"github.com/lumen-render/lumen/log"
	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/scene"
)

// Config holds the progressive rendering parameters.
type Config struct {
	Width, Height  int
	TileSize       int
	Passes         int
	SamplesPerPass int
	NumWorkers     int // 0 selects the CPU count
}

// DefaultConfig returns the parameters used by the CLI when no flags
// override them.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         450,
		TileSize:       64,
		Passes:         8,
		SamplesPerPass: 4,
	}
}

// Renderer owns the progressive render state for one image.
type Renderer struct {
	scene       *scene.Scene
	camera      *Camera
	config      Config
	framebuffer *Framebuffer
	tiles       []*Tile
	pool        *WorkerPool
	logger      log.Logger
}

// New creates a renderer for the scene as seen by the camera, sampled
// by the given integrator.
func New(sc *scene.Scene, camera *Camera, integ integrator.Integrator, config Config) *Renderer {
	fb := NewFramebuffer(config.Width, config.Height)
	return &Renderer{
		scene:       sc,
		camera:      camera,
		config:      config,
		framebuffer: fb,
		tiles:       NewTileGrid(config.Width, config.Height, config.TileSize),
		pool:        NewWorkerPool(sc, camera, integ, fb, config.NumWorkers),
		logger:      log.New("renderer"),
	}
}

// Framebuffer exposes the accumulation target. The returned buffer is
// only safe to read between passes.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.framebuffer
}

// RenderPass runs one pass: every tile gets Config.SamplesPerPass more
// samples per pixel. The pool must have been started.
func (r *Renderer) RenderPass(pass int) error {
	for _, tile := range r.tiles {
		r.pool.Submit(TileTask{Tile: tile, Pass: pass, Samples: r.config.SamplesPerPass})
	}

	for range r.tiles {
		result, ok := r.pool.Result()
		if !ok {
			return errPoolClosed
		}
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}

// Render runs the full pass loop, honoring context cancellation between
// passes, and returns the framebuffer with the final estimates.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()

	r.logger.Infof("rendering %dx%d, %d passes x %d samples, %d tiles, %d workers",
		r.config.Width, r.config.Height, r.config.Passes, r.config.SamplesPerPass,
		len(r.tiles), r.pool.NumWorkers())

	r.pool.Start()
	defer r.pool.Stop()

	stats := RenderStats{
		Width:   r.config.Width,
		Height:  r.config.Height,
		Tiles:   len(r.tiles),
		Workers: r.pool.NumWorkers(),
	}

	for pass := 0; pass < r.config.Passes; pass++ {
		select {
		case <-ctx.Done():
			r.logger.Warningf("render cancelled before pass %d", pass)
			return r.framebuffer, stats, ctx.Err()
		default:
		}

		passStart := time.Now()
		if err := r.RenderPass(pass); err != nil {
			return r.framebuffer, stats, err
		}

		stats.Passes++
		stats.SamplesPerPixel += r.config.SamplesPerPass
		stats.Elapsed = time.Since(start)

		r.logger.Infof("pass %d/%d done in %v (%d samples/pixel total)",
			pass+1, r.config.Passes, time.Since(passStart).Round(time.Millisecond),
			stats.SamplesPerPixel)
	}

	return r.framebuffer, stats, nil
}
