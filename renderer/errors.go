package renderer

import "errors"

var (
	ErrInvalidFrameDimensions = errors.New("renderer: frame width and height must be positive")
	ErrInvalidSamplesPerPixel = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidMaxDepth        = errors.New("renderer: max depth must be positive")
	ErrInvalidGamma           = errors.New("renderer: gamma must be positive")
	ErrInvalidBlockHeight     = errors.New("renderer: block height must not be negative")
	ErrNoTracers              = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined        = errors.New("renderer: no scene defined")
	ErrCameraNotDefined       = errors.New("renderer: no camera defined")
	ErrInterrupted            = errors.New("renderer: interrupted while rendering")
)
