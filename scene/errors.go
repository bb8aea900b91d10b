package scene

import "errors"

var (
	ErrMissingFocusDistance   = errors.New("scene: camera focus distance not specified")
	ErrInvalidFOV             = errors.New("scene: camera vertical fov must be in the (0, 180) degree range")
	ErrInvalidAspectRatio     = errors.New("scene: camera aspect ratio must be positive")
	ErrNegativeAperture       = errors.New("scene: camera aperture must not be negative")
	ErrDegenerateCameraBasis  = errors.New("scene: camera look-at, eye and up vectors do not define an orthonormal basis")
	ErrUnknownMaterialType    = errors.New("scene: unknown material type")
	ErrNegativeFuzziness      = errors.New("scene: metal fuzziness must not be negative")
	ErrFuzzinessOutOfRange    = errors.New("scene: metal fuzziness must not exceed 1")
	ErrInvalidRefractiveIndex = errors.New("scene: refractive index must be positive")
	ErrInvalidMaterialIndex   = errors.New("scene: primitive references an undefined material")
	ErrZeroRadius             = errors.New("scene: sphere radius must not be zero")
	ErrUnknownPreset          = errors.New("scene: unknown preset")
)
