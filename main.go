package main

import (
	"os"

	"github.com/lumen-render/lumen/cmd"
	"github.com/lumen-render/lumen/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "progressive offline renderer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the demo scene",
			Description: `
Render the built-in demo scene progressively: each pass adds samples to
every pixel, so cancelling with Ctrl-C still writes the image converged
so far.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 450,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "render tile size in pixels",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 8,
					Usage: "number of progressive passes",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 4,
					Usage: "samples per pixel added each pass",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 3,
					Usage: "indirect bounce budget per ray",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = CPU count)",
				},
				cli.StringFlag{
					Name:  "integrator",
					Value: "path",
					Usage: "light transport algorithm: whitted or path",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: 2.2,
					Usage: "display gamma for PNG export",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "raw-out",
					Usage: "optional raw float image filename",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "optional PNG/JPEG image mapped onto the ground plane",
				},
			},
			Action: cmd.RenderScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("lumen").Error(err)
		os.Exit(1)
	}
}
