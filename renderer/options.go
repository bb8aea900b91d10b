package renderer

import (
	"fmt"
	"math"
	"runtime"
)

// Upper bound for FrameW*FrameH.
const MaxFramePixels = 1 << 28

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Max number of bounces for each traced path.
	MaxDepth uint32

	// Gamma for the linear -> display color mapping.
	Gamma float64

	// Number of cpu tracers to spawn. If 0, one tracer per cpu is used.
	NumWorkers int

	// Height of the row blocks handed to the tracers. If 0, the frame is
	// split into one contiguous block per tracer.
	BlockH uint32

	// Seed for the per-pixel random number generators.
	Seed uint64

	// Render surface normals instead of tracing paths.
	Debug bool
}

// Get the default render options.
func DefaultOptions() Options {
	return Options{
		FrameW:          960,
		FrameH:          540,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Gamma:           2.0,
		NumWorkers:      runtime.NumCPU(),
		BlockH:          8,
		Seed:            1,
	}
}

// Check that options are usable for rendering.
func (opts Options) Validate() error {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidFrameDimensions, opts.FrameW, opts.FrameH)
	}
	if uint64(opts.FrameW)*uint64(opts.FrameH) > MaxFramePixels {
		return fmt.Errorf("%w (got %dx%d; at most %d pixels supported)", ErrInvalidFrameDimensions, opts.FrameW, opts.FrameH, MaxFramePixels)
	}
	if opts.SamplesPerPixel == 0 {
		return ErrInvalidSamplesPerPixel
	}
	if opts.MaxDepth == 0 {
		return ErrInvalidMaxDepth
	}
	if !(opts.Gamma > 0) || math.IsInf(opts.Gamma, 1) {
		return fmt.Errorf("%w (got %f)", ErrInvalidGamma, opts.Gamma)
	}
	if opts.NumWorkers < 0 {
		return fmt.Errorf("%w (got %d workers)", ErrNoTracers, opts.NumWorkers)
	}

	return nil
}
