package cmd

import (
	"errors"

	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/scene/reader"
	"github.com/achilleasa/polaris/scene/writer"
	"github.com/urfave/cli"
)

// Load the scene file passed as the command argument or, if no argument is
// specified, the built-in scene selected by the preset flag.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	switch ctx.NArg() {
	case 0:
		name := ctx.String("preset")
		logger.Infof("using built-in scene %q", name)
		return scene.Preset(name)
	case 1:
		return reader.ReadScene(ctx.Args().First())
	}

	return nil, errors.New("expected at most one scene file argument")
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())

	cam, err := scene.NewCamera(sc.Camera)
	if err != nil {
		logger.Warningf("scene camera is not usable: %s", err.Error())
		return nil
	}
	logger.Noticef("camera setup:\n%s", cam)

	return nil
}

// Write scene in the text scene format. Handy for using a built-in scene as
// the starting point for a custom one.
func ExportScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	sceneFile := ctx.String("out")
	if err = writer.WriteScene(sc, sceneFile); err != nil {
		return err
	}

	logger.Noticef("wrote scene to %s", sceneFile)
	return nil
}
