package cmd

import (
	"context"
	"fmt"
	"image/png"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/achilleasa/polaris/renderer"
	"github.com/urfave/cli"
)

// Build render options from the command flags. Negative values are rejected
// before narrowing them to the unsigned option fields.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	w, h := ctx.Int("width"), ctx.Int("height")
	if w <= 0 || h <= 0 {
		return renderer.Options{}, fmt.Errorf("%w (got %dx%d)", renderer.ErrInvalidFrameDimensions, w, h)
	}
	if spp := ctx.Int("spp"); spp <= 0 {
		return renderer.Options{}, fmt.Errorf("%w (got %d)", renderer.ErrInvalidSamplesPerPixel, spp)
	}
	if depth := ctx.Int("depth"); depth <= 0 {
		return renderer.Options{}, fmt.Errorf("%w (got %d)", renderer.ErrInvalidMaxDepth, depth)
	}
	if blockH := ctx.Int("block-height"); blockH < 0 {
		return renderer.Options{}, fmt.Errorf("%w (got %d)", renderer.ErrInvalidBlockHeight, blockH)
	}

	opts := renderer.Options{
		FrameW:          clampUint32(w),
		FrameH:          clampUint32(h),
		SamplesPerPixel: clampUint32(ctx.Int("spp")),
		MaxDepth:        clampUint32(ctx.Int("depth")),
		Gamma:           ctx.Float64("gamma"),
		NumWorkers:      ctx.Int("workers"),
		BlockH:          clampUint32(ctx.Int("block-height")),
		Seed:            ctx.Uint64("seed"),
		Debug:           ctx.Bool("debug-normals"),
	}
	return opts, opts.Validate()
}

// Narrow a non-negative flag value, saturating at the uint32 range.
func clampUint32(v int) uint32 {
	if uint64(v) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	return renderToFile(ctx, opts)
}

func renderToFile(ctx *cli.Context, opts renderer.Options) error {
	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	if ctx.IsSet("aperture") {
		sc.Camera.Aperture = ctx.Float64("aperture")
	}

	// Create renderer
	r, err := renderer.NewDefault(sc, nil, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	// Stop rendering on SIGINT
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = r.Render(renderCtx)
	if err != nil {
		return err
	}

	// Display stats
	logger.Noticef("frame statistics\n%s", r.Stats().Table())

	// Export PNG
	imgFile := ctx.String("out")
	start := time.Now()
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	err = png.Encode(f, r.Frame().Image())
	if err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1e6)

	return nil
}
