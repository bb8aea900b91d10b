package scene

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/achilleasa/polaris/types"
)

// Camera settings. FocusDistance has no default and must always be set;
// a zero Ratio is resolved by the renderer from the frame dimensions.
type CameraConfig struct {
	Eye   types.Vec3
	Look  types.Vec3
	Up    types.Vec3
	FOV   float64 // vertical, in degrees
	Ratio float64 // viewport width / height

	Aperture      float64
	FocusDistance float64
}

// Get a camera config populated with the default settings.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:      types.Vec3{0, 0, 0},
		Look:     types.Vec3{0, 0, -1},
		Up:       types.Vec3{0, 1, 0},
		FOV:      90.0,
		Ratio:    16.0 / 9.0,
		Aperture: 2.0,
	}
}

// Check camera settings.
func (cfg CameraConfig) Validate() error {
	if !(cfg.FocusDistance > 0) {
		return ErrMissingFocusDistance
	}
	if !(cfg.FOV > 0 && cfg.FOV < 180) {
		return ErrInvalidFOV
	}
	if !(cfg.Ratio > 0) {
		return ErrInvalidAspectRatio
	}
	if cfg.Aperture < 0 {
		return ErrNegativeAperture
	}
	if cfg.Eye.Sub(cfg.Look).IsNearZero() || cfg.Up.Cross(cfg.Eye.Sub(cfg.Look)).IsNearZero() {
		return ErrDegenerateCameraBasis
	}

	return nil
}

// A thin-lens camera that maps normalized image plane coordinates to world
// space rays. Cameras are immutable once built and can be shared between
// tracers.
type Camera struct {
	origin types.Vec3

	// Orthonormal camera basis.
	u, v, w types.Vec3

	viewportW float64
	viewportH float64

	focusDistance float64
	lensRadius    float64

	horizontal    types.Vec3
	vertical      types.Vec3
	topLeftCorner types.Vec3
}

// Build a camera from the supplied config.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{
		origin:        cfg.Eye,
		focusDistance: cfg.FocusDistance,
		lensRadius:    cfg.Aperture / 2.0,
	}

	c.w = cfg.Eye.Sub(cfg.Look).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.viewportH = 2.0 * math.Tan(cfg.FOV*math.Pi/180.0/2.0)
	c.viewportW = c.viewportH * cfg.Ratio

	c.horizontal = c.u.Mul(c.focusDistance * c.viewportW)
	c.vertical = c.v.Mul(c.focusDistance * c.viewportH)
	c.topLeftCorner = c.origin.
		Sub(c.horizontal.Div(2)).
		Add(c.vertical.Div(2)).
		Sub(c.w.Mul(c.focusDistance))

	return c, nil
}

// Generate a ray for the image plane coordinates (s, t) where (0, 0) is the
// top-left and (1, 1) the bottom-right corner. The ray origin is jittered
// across the lens to simulate depth of field.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) types.Ray {
	var offset types.Vec3
	if c.lensRadius > 0 {
		rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
		offset = c.u.Mul(rd[0]).Add(c.v.Mul(rd[1]))
	}

	origin := c.origin.Add(offset)
	return types.Ray{
		Origin: origin,
		Dir: c.topLeftCorner.
			Add(c.horizontal.Mul(s)).
			Sub(c.vertical.Mul(t)).
			Sub(origin),
	}
}

// Get the lens radius.
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nOrigin     : %v\nTop left   : %v\nHorizontal : %v\nVertical   : %v\nLens radius: %3.3f",
		c.origin, c.topLeftCorner, c.horizontal, c.vertical, c.lensRadius,
	)
}
