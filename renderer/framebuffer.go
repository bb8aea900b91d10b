package renderer

import (
	"image"
	"image/color"

	"github.com/achilleasa/polaris/types"
)

// A Framebuffer stores the gamma-corrected color of each frame pixel as 3
// float channels in the [0, 1] range. Row 0 is the top of the frame.
type Framebuffer struct {
	Width  uint32
	Height uint32

	// Pixel data in row-major RGB order.
	Pix []float64
}

// Allocate a black framebuffer.
func NewFramebuffer(width, height uint32) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, int(width)*int(height)*3),
	}
}

// Set the color for pixel (x, y).
func (fb *Framebuffer) Set(x, y uint32, c types.Vec3) {
	offset := (int(y)*int(fb.Width) + int(x)) * 3
	fb.Pix[offset] = c[0]
	fb.Pix[offset+1] = c[1]
	fb.Pix[offset+2] = c[2]
}

// Get the color for pixel (x, y).
func (fb *Framebuffer) At(x, y uint32) types.Vec3 {
	offset := (int(y)*int(fb.Width) + int(x)) * 3
	return types.Vec3{fb.Pix[offset], fb.Pix[offset+1], fb.Pix[offset+2]}
}

// Convert framebuffer contents to an 8-bit RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.Width), int(fb.Height)))
	for y := uint32(0); y < fb.Height; y++ {
		for x := uint32(0); x < fb.Width; x++ {
			c := fb.At(x, y).Clamp(0, 1)
			img.SetRGBA(int(x), int(y), color.RGBA{
				R: toByte(c[0]),
				G: toByte(c[1]),
				B: toByte(c[2]),
				A: 255,
			})
		}
	}

	return img
}

func toByte(v float64) uint8 {
	return uint8(v*255.0 + 0.5)
}
