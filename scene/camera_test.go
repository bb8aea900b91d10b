package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/achilleasa/polaris/types"
)

func TestCameraConfigValidation(t *testing.T) {
	type spec struct {
		mutate func(cfg *CameraConfig)
		expErr error
	}
	specs := []spec{
		{func(cfg *CameraConfig) {}, nil},
		{func(cfg *CameraConfig) { cfg.FocusDistance = 0 }, ErrMissingFocusDistance},
		{func(cfg *CameraConfig) { cfg.FocusDistance = -1 }, ErrMissingFocusDistance},
		{func(cfg *CameraConfig) { cfg.FOV = 0 }, ErrInvalidFOV},
		{func(cfg *CameraConfig) { cfg.FOV = 180 }, ErrInvalidFOV},
		{func(cfg *CameraConfig) { cfg.Ratio = 0 }, ErrInvalidAspectRatio},
		{func(cfg *CameraConfig) { cfg.Aperture = -0.1 }, ErrNegativeAperture},
		{func(cfg *CameraConfig) { cfg.Look = cfg.Eye }, ErrDegenerateCameraBasis},
		{func(cfg *CameraConfig) { cfg.Up = types.Vec3{0, 0, 1} }, ErrDegenerateCameraBasis},
	}

	for index, s := range specs {
		cfg := DefaultCameraConfig()
		cfg.FocusDistance = 1
		s.mutate(&cfg)

		_, err := NewCamera(cfg)
		if s.expErr == nil && err != nil {
			t.Fatalf("[spec %d] expected no error; got %v", index, err)
		}
		if s.expErr != nil && !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}
}

func TestDefaultCameraConfig(t *testing.T) {
	cfg := DefaultCameraConfig()
	if cfg.Eye != (types.Vec3{0, 0, 0}) || cfg.Look != (types.Vec3{0, 0, -1}) || cfg.Up != (types.Vec3{0, 1, 0}) {
		t.Fatalf("unexpected default orientation: %+v", cfg)
	}
	if cfg.FOV != 90 || cfg.Ratio != 16.0/9.0 || cfg.Aperture != 2.0 {
		t.Fatalf("unexpected default lens settings: %+v", cfg)
	}
	if _, err := NewCamera(cfg); !errors.Is(err, ErrMissingFocusDistance) {
		t.Fatalf("expected the default config to require a focus distance; got %v", err)
	}
}

func TestPinholeCameraRays(t *testing.T) {
	cfg := DefaultCameraConfig()
	cfg.Ratio = 2.0
	cfg.Aperture = 0
	cfg.FocusDistance = 1

	cam, err := NewCamera(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// A 90deg vfov gives a viewport height of 2 at unit focus distance
	type spec struct {
		s, t   float64
		expDir types.Vec3
	}
	specs := []spec{
		{0.5, 0.5, types.Vec3{0, 0, -1}},
		{0, 0, types.Vec3{-2, 1, -1}},
		{1, 0, types.Vec3{2, 1, -1}},
		{0, 1, types.Vec3{-2, -1, -1}},
		{1, 1, types.Vec3{2, -1, -1}},
	}

	rng := types.NewRand(0, 0)
	for index, s := range specs {
		ray := cam.GetRay(s.s, s.t, rng)
		if ray.Origin != cfg.Eye {
			t.Fatalf("[spec %d] expected pinhole rays to start at the eye; got %v", index, ray.Origin)
		}
		if !ray.Dir.ApproxEqual(s.expDir, 1e-9) {
			t.Fatalf("[spec %d] expected direction %v; got %v", index, s.expDir, ray.Dir)
		}
	}
}

func TestCameraBasisIsOrthonormal(t *testing.T) {
	cfg := DefaultCameraConfig()
	cfg.Eye = types.Vec3{3, 3, 2}
	cfg.Look = types.Vec3{0, 0, -1}
	cfg.FocusDistance = 5

	cam, err := NewCamera(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []types.Vec3{cam.u, cam.v, cam.w} {
		if math.Abs(v.Len()-1) > 1e-9 {
			t.Fatalf("expected unit basis vector; got %v", v)
		}
	}
	if math.Abs(cam.u.Dot(cam.v)) > 1e-9 || math.Abs(cam.u.Dot(cam.w)) > 1e-9 || math.Abs(cam.v.Dot(cam.w)) > 1e-9 {
		t.Fatalf("expected orthogonal basis; got u=%v v=%v w=%v", cam.u, cam.v, cam.w)
	}

	// w points from the look-at point towards the eye
	expW := cfg.Eye.Sub(cfg.Look).Normalize()
	if !cam.w.ApproxEqual(expW, 1e-9) {
		t.Fatalf("expected w %v; got %v", expW, cam.w)
	}
}

func TestThinLensCameraRays(t *testing.T) {
	cfg := DefaultCameraConfig()
	cfg.Aperture = 1.0
	cfg.FocusDistance = 4

	cam, err := NewCamera(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if cam.LensRadius() != 0.5 {
		t.Fatalf("expected lens radius 0.5; got %f", cam.LensRadius())
	}

	// All rays through the same image plane point converge on the focus plane
	focusPoint := types.Vec3{0, 0, -4}
	rng := types.NewRand(11, 12)
	jittered := false
	for i := 0; i < 1000; i++ {
		ray := cam.GetRay(0.5, 0.5, rng)

		offset := ray.Origin.Sub(cfg.Eye)
		if offset.Len() >= 0.5 {
			t.Fatalf("[iteration %d] expected lens offset within the lens radius; got %v", i, offset)
		}
		if offset[2] != 0 {
			t.Fatalf("[iteration %d] expected lens offset on the lens plane; got %v", i, offset)
		}
		if !offset.IsNearZero() {
			jittered = true
		}

		if p := ray.At(1); !p.ApproxEqual(focusPoint, 1e-9) {
			t.Fatalf("[iteration %d] expected ray to pass through the focus point %v; got %v", i, focusPoint, p)
		}
	}

	if !jittered {
		t.Fatal("expected ray origins to be jittered across the lens")
	}
}
