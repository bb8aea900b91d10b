package tracer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/polaris/log"
	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/types"
)

var (
	ErrFramebufferTooSmall = errors.New("tracer: framebuffer is too small for the requested frame")
	ErrBlockOutOfBounds    = errors.New("tracer: block exceeds frame bounds")
)

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// Shared read-only render inputs.
	scene  *scene.Scene
	camera *scene.Camera

	// Output buffer with 3 channels per pixel. Blocks never overlap so
	// workers write to it without locking.
	frameBuffer []float64

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Accumulated statistics.
	statsMu sync.Mutex
	stats   Stats
}

// Create a new cpu tracer and start its worker. The scene and camera must
// not be modified while the tracer is running.
func NewCPUTracer(id string, sc *scene.Scene, camera *scene.Camera, frameBuffer []float64) Tracer {
	tr := &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		scene:        sc,
		camera:       camera,
		frameBuffer:  frameBuffer,
		blockReqChan: make(chan BlockRequest),
	}

	tr.startWorker()
	return tr
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Shutdown the tracer worker. Calling Close more than once is a no-op.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan == nil {
		return
	}

	tr.closeChan <- struct{}{}

	// wait for worker to ack close and shutdown channel
	<-tr.closeChan
	close(tr.closeChan)
	tr.closeChan = nil
	tr.wg.Wait()
}

// Enqueue block request. Must not be called after Close.
func (tr *cpuTracer) Enqueue(blockReq BlockRequest) {
	tr.blockReqChan <- blockReq
}

// Retrieve a snapshot of the tracer statistics.
func (tr *cpuTracer) Stats() Stats {
	tr.statsMu.Lock()
	defer tr.statsMu.Unlock()
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})
	readyChan := make(chan struct{})

	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		close(readyChan)
		for {
			select {
			case blockReq := <-tr.blockReqChan:
				startTime := time.Now()
				err := tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}
				elapsed := time.Since(startTime)

				tr.statsMu.Lock()
				tr.stats.Blocks++
				tr.stats.Rows += blockReq.BlockH
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime += elapsed
				tr.statsMu.Unlock()

				tr.logger.Debugf("rendered rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, elapsed)
				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block. Each pixel seeds its own generator from the request seed and
// its index in the frame so the output does not depend on how rows are
// distributed between tracers.
func (tr *cpuTracer) renderBlock(blockReq *BlockRequest) error {
	if uint64(blockReq.BlockY)+uint64(blockReq.BlockH) > uint64(blockReq.FrameH) {
		return fmt.Errorf("%w: rows [%d, %d) of %d", ErrBlockOutOfBounds, blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, blockReq.FrameH)
	}
	if len(tr.frameBuffer) < int(blockReq.FrameW)*int(blockReq.FrameH)*3 {
		return ErrFramebufferTooSmall
	}

	invGamma := 1.0 / blockReq.Gamma
	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		if blockReq.Ctx != nil {
			if err := blockReq.Ctx.Err(); err != nil {
				return err
			}
		}

		for x := uint32(0); x < blockReq.FrameW; x++ {
			pixelIndex := int(y)*int(blockReq.FrameW) + int(x)
			rng := types.NewRand(blockReq.Seed, uint64(pixelIndex))

			var color types.Vec3
			if blockReq.Debug {
				s := float64(x) / float64(max(blockReq.FrameW, 2)-1)
				t := float64(y) / float64(max(blockReq.FrameH, 2)-1)
				color = NormalColor(tr.camera.GetRay(s, t, rng), tr.scene)
			} else {
				color = SamplePixel(tr.camera, tr.scene, x, y, blockReq.FrameW, blockReq.FrameH, blockReq.SamplesPerPixel, blockReq.MaxDepth, rng).
					Pow(invGamma)
			}
			color = color.Clamp(0, 1)

			offset := pixelIndex * 3
			tr.frameBuffer[offset] = color[0]
			tr.frameBuffer[offset+1] = color[1]
			tr.frameBuffer[offset+2] = color[2]
		}
	}

	return nil
}
