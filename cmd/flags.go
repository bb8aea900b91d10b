package cmd

import (
	"runtime"

	"github.com/achilleasa/polaris/renderer"
	"github.com/urfave/cli"
)

// Flags shared by the commands that produce an image.
func RenderFlags(defaultOut string) []cli.Flag {
	defaults := renderer.DefaultOptions()
	return []cli.Flag{
		cli.IntFlag{
			Name:   "width",
			Value:  int(defaults.FrameW),
			Usage:  "frame width",
			EnvVar: "POLARIS_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  int(defaults.FrameH),
			Usage:  "frame height",
			EnvVar: "POLARIS_HEIGHT",
		},
		cli.IntFlag{
			Name:   "spp",
			Value:  int(defaults.SamplesPerPixel),
			Usage:  "samples per pixel",
			EnvVar: "POLARIS_SPP",
		},
		cli.IntFlag{
			Name:   "depth",
			Value:  int(defaults.MaxDepth),
			Usage:  "max number of bounces per path",
			EnvVar: "POLARIS_DEPTH",
		},
		cli.Float64Flag{
			Name:   "gamma",
			Value:  defaults.Gamma,
			Usage:  "gamma for mapping linear colors to the output image",
			EnvVar: "POLARIS_GAMMA",
		},
		cli.IntFlag{
			Name:   "workers",
			Value:  runtime.NumCPU(),
			Usage:  "number of cpu tracers",
			EnvVar: "POLARIS_WORKERS",
		},
		cli.IntFlag{
			Name:   "block-height",
			Value:  int(defaults.BlockH),
			Usage:  "height of the row blocks handed to tracers; 0 splits the frame evenly between tracers",
			EnvVar: "POLARIS_BLOCK_HEIGHT",
		},
		cli.Uint64Flag{
			Name:   "seed",
			Value:  defaults.Seed,
			Usage:  "seed for the per-pixel random number generators",
			EnvVar: "POLARIS_SEED",
		},
		cli.StringFlag{
			Name:   "preset",
			Value:  "default",
			Usage:  "built-in scene to render when no scene file is specified",
			EnvVar: "POLARIS_PRESET",
		},
		cli.Float64Flag{
			Name:   "aperture",
			Usage:  "override the camera aperture; 0 disables depth of field",
			EnvVar: "POLARIS_APERTURE",
		},
		cli.BoolFlag{
			Name:   "debug-normals",
			Usage:  "shade primary hits by their surface normal",
			EnvVar: "POLARIS_DEBUG_NORMALS",
		},
		cli.StringFlag{
			Name:   "out, o",
			Value:  defaultOut,
			Usage:  "image filename for the rendered frame",
			EnvVar: "POLARIS_OUT",
		},
	}
}
