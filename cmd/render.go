package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/renderer"
	"github.com/lumen-render/lumen/pkg/texture"
	"github.com/urfave/cli"
)

// RenderScene renders the built-in demo scene with the flag-selected
// integrator and writes the result as a PNG, optionally alongside the
// raw float image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.TileSize = ctx.Int("tile-size")
	config.Passes = ctx.Int("passes")
	config.SamplesPerPass = ctx.Int("spp")
	config.NumWorkers = ctx.Int("workers")

	integConfig := integrator.DefaultConfig()
	integConfig.Bounces = ctx.Int("bounces")

	var integ integrator.Integrator
	switch name := ctx.String("integrator"); name {
	case "whitted":
		integ = integrator.NewDirectLighting(integConfig)
	case "path":
		// The path tracer writes unbounded radiance estimates; tone
		// mapping happens at image export.
		integConfig.MaxValue = 0
		integ = integrator.NewPathTracing(integConfig)
	default:
		return fmt.Errorf("unknown integrator %q (want whitted or path)", name)
	}

	sc, err := buildDemoScene(ctx.String("texture"))
	if err != nil {
		return err
	}
	aspect := float64(config.Width) / float64(config.Height)
	camera := renderer.NewCamera(
		core.NewVec3(0, 2.5, 7), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0),
		45, aspect)

	// Ctrl-C cancels between passes, keeping whatever converged so far
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := renderer.New(sc, camera, integ, config)
	fb, stats, err := r.Render(renderCtx)
	if err != nil && err != context.Canceled {
		return err
	}

	if out := ctx.String("out"); out != "" {
		if err := writePNG(out, fb, ctx.Float64("gamma")); err != nil {
			return err
		}
		logger.Infof("wrote %s", out)
	}

	if raw := ctx.String("raw-out"); raw != "" {
		if err := texture.Save(raw, fb.ToTexture()); err != nil {
			return err
		}
		logger.Infof("wrote %s", raw)
	}

	displayStats(stats)
	return nil
}

func writePNG(path string, fb *renderer.Framebuffer, gamma float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return png.Encode(f, fb.ToImage(gamma))
}

func displayStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Infof("render statistics\n%s", buf.String())
}
