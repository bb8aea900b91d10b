package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/polaris/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListPresets(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	names := scene.PresetNames()
	buf.WriteString(fmt.Sprintf("\n%d built-in scene(s):\n\n", len(names)))
	for _, name := range names {
		sc, err := scene.Preset(name)
		if err != nil {
			return err
		}
		buf.WriteString(fmt.Sprintf("  %-10s %d material(s), %d sphere(s)\n", name, len(sc.Materials), len(sc.Spheres)))
	}

	logger.Notice(buf.String())
	return nil
}
