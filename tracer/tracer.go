package tracer

import (
	"context"
	"time"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Cancels the request. Tracers check it between rows.
	Ctx context.Context

	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// Max number of bounces per path.
	MaxDepth uint32

	// Gamma used for the linear -> display color mapping.
	Gamma float64

	// A random seed value. Each pixel derives its own stream from it.
	Seed uint64

	// Render surface normals instead of tracing paths.
	Debug bool

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics. Counters accumulate over the tracer's lifetime.
type Stats struct {
	// Number of rendered blocks and rows.
	Blocks uint32
	Rows   uint32

	// The height of the last rendered block.
	BlockH uint32

	// The total time spent rendering blocks.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Enqueue block request. The call blocks until the tracer accepts the request.
	Enqueue(BlockRequest)

	// Retrieve a snapshot of the tracer statistics.
	Stats() Stats
}
