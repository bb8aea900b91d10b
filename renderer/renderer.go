package renderer

import "context"

type Renderer interface {
	// Render frame. Rendering stops early with ErrInterrupted if ctx is
	// cancelled.
	Render(ctx context.Context) error

	// Get the framebuffer with the last rendered frame.
	Frame() *Framebuffer

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
