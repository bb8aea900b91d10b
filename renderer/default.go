package renderer

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/achilleasa/polaris/log"
	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/tracer"
)

type defaultRenderer struct {
	logger log.Logger

	// The scene to be rendered and the camera built from its settings.
	scene  *scene.Scene
	camera *scene.Camera

	// Renderer options.
	options Options

	// The framebuffer shared by all tracers.
	frame *Framebuffer

	// The list of attached tracers and the scheduler used to distribute
	// blocks between them.
	tracers   []tracer.Tracer
	scheduler tracer.BlockScheduler

	// Stats for the last rendered frame.
	frameStats FrameStats
}

// Create a new renderer that uses a pool of cpu tracers to render frames of
// the given scene. If scheduler is nil, one is selected based on the BlockH
// option.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	logger := log.New("renderer")

	frameAspect := float64(opts.FrameW) / float64(opts.FrameH)
	camCfg := sc.Camera
	if camCfg.Ratio == 0 {
		camCfg.Ratio = frameAspect
	} else if math.Abs(camCfg.Ratio-frameAspect) > 1e-3 {
		logger.Warningf("camera aspect ratio %.3f does not match frame aspect ratio %.3f; image will appear stretched", camCfg.Ratio, frameAspect)
	}

	camera, err := scene.NewCamera(camCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCameraNotDefined, err)
	}

	if scheduler == nil {
		if opts.BlockH > 0 {
			scheduler = tracer.FixedBlockScheduler(opts.BlockH)
		} else {
			scheduler = tracer.NaiveScheduler()
		}
	}

	if opts.NumWorkers == 0 {
		opts.NumWorkers = runtime.NumCPU()
	}

	r := &defaultRenderer{
		logger:    logger,
		scene:     sc,
		camera:    camera,
		options:   opts,
		frame:     NewFramebuffer(opts.FrameW, opts.FrameH),
		scheduler: scheduler,
	}

	r.tracers = make([]tracer.Tracer, opts.NumWorkers)
	for index := range r.tracers {
		r.tracers[index] = tracer.NewCPUTracer(fmt.Sprintf("cpu-%d", index), sc, camera, r.frame.Pix)
	}
	r.logger.Infof("attached %d cpu tracers", len(r.tracers))

	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get the framebuffer with the last rendered frame.
func (r *defaultRenderer) Frame() *Framebuffer {
	return r.frame
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.frameStats
}

// Render frame.
func (r *defaultRenderer) Render(ctx context.Context) error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	blocks := r.scheduler.Schedule(r.tracers, r.options.FrameH)
	r.logger.Noticef(
		"rendering %dx%d frame with %d spp (max depth %d) using %d tracers and %d blocks",
		r.options.FrameW, r.options.FrameH, r.options.SamplesPerPixel, r.options.MaxDepth, len(r.tracers), len(blocks),
	)

	statsBefore := make([]tracer.Stats, len(r.tracers))
	for index, tr := range r.tracers {
		statsBefore[index] = tr.Stats()
	}

	start := time.Now()

	// Tracers never block on the reply channels so the dispatcher can
	// enqueue the next block while replies are being collected.
	doneChan := make(chan uint32, len(blocks))
	errChan := make(chan error, len(blocks))
	dispatchedChan := make(chan int, 1)
	go func() {
		dispatched := 0
		for _, block := range blocks {
			if ctx.Err() != nil {
				break
			}
			r.tracers[block.Tracer].Enqueue(tracer.BlockRequest{
				Ctx:             ctx,
				FrameW:          r.options.FrameW,
				FrameH:          r.options.FrameH,
				BlockY:          block.BlockY,
				BlockH:          block.BlockH,
				SamplesPerPixel: r.options.SamplesPerPixel,
				MaxDepth:        r.options.MaxDepth,
				Gamma:           r.options.Gamma,
				Seed:            r.options.Seed,
				Debug:           r.options.Debug,
				DoneChan:        doneChan,
				ErrChan:         errChan,
			})
			dispatched++
		}
		dispatchedChan <- dispatched
	}()

	var firstErr error
	var renderedRows uint32
	pending, replies := -1, 0
	for pending < 0 || replies < pending {
		select {
		case pending = <-dispatchedChan:
		case rows := <-doneChan:
			replies++
			renderedRows += rows
			r.logger.Debugf("%d/%d rows rendered", renderedRows, r.options.FrameH)
		case err := <-errChan:
			replies++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	r.updateStats(statsBefore, time.Since(start))

	if ctx.Err() != nil {
		return ErrInterrupted
	}
	if firstErr != nil {
		return firstErr
	}

	r.logger.Noticef("rendered frame in %d ms", r.frameStats.RenderTime.Nanoseconds()/1e6)
	return nil
}

// Collect the per tracer work done since statsBefore was captured.
func (r *defaultRenderer) updateStats(statsBefore []tracer.Stats, renderTime time.Duration) {
	r.frameStats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	for index, tr := range r.tracers {
		stats := tr.Stats()
		rows := stats.Rows - statsBefore[index].Rows
		r.frameStats.Tracers[index] = TracerStat{
			Id:           tr.Id(),
			Blocks:       stats.Blocks - statsBefore[index].Blocks,
			Rows:         rows,
			FramePercent: 100.0 * float32(rows) / float32(r.options.FrameH),
			RenderTime:   stats.RenderTime - statsBefore[index].RenderTime,
		}
	}
}
