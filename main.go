package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/polaris/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "polaris"
	app.Usage = "render sphere scenes using monte-carlo path tracing"
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
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "POLARIS_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Description: `
Render a single frame of a scene file or, if no file is specified, of the
built-in scene selected by --preset and write it to a PNG file.`,
			ArgsUsage: "[scene_file.scene]",
			Flags:     cmd.RenderFlags("frame.png"),
			Action:    cmd.RenderFrame,
		},
		{
			Name:      "debug",
			Usage:     "render a quick preview shaded by surface normals",
			ArgsUsage: "[scene_file.scene]",
			Flags:     cmd.RenderFlags("normals.png"),
			Action:    cmd.Debug,
		},
		{
			Name:      "scene-info",
			Usage:     "display scene materials, primitives and camera setup",
			ArgsUsage: "[scene_file.scene]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "preset",
					Value:  "default",
					Usage:  "built-in scene to inspect when no scene file is specified",
					EnvVar: "POLARIS_PRESET",
				},
			},
			Action: cmd.ShowSceneInfo,
		},
		{
			Name:      "export",
			Usage:     "write a scene in the text scene format",
			ArgsUsage: "[scene_file.scene]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "preset",
					Value:  "default",
					Usage:  "built-in scene to export when no scene file is specified",
					EnvVar: "POLARIS_PRESET",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "scene.scene",
					Usage: "output filename",
				},
			},
			Action: cmd.ExportScene,
		},
		{
			Name:   "list-presets",
			Usage:  "list built-in scenes",
			Action: cmd.ListPresets,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
