package cmd

import (
	"github.com/urfave/cli"
)

// Render a single-sample frame shaded by surface normals. Useful for checking
// scene geometry and camera placement without waiting for a full render.
func Debug(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}
	opts.Debug = true
	opts.SamplesPerPixel = 1

	logger.Notice("rendering surface normals")
	return renderToFile(ctx, opts)
}
