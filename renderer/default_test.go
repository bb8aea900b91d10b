package renderer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/tracer"
	"github.com/achilleasa/polaris/types"
)

func testOptions(numWorkers int) Options {
	opts := DefaultOptions()
	opts.FrameW = 24
	opts.FrameH = 12
	opts.SamplesPerPixel = 4
	opts.MaxDepth = 8
	opts.NumWorkers = numWorkers
	opts.BlockH = 2
	return opts
}

func TestNewDefaultErrors(t *testing.T) {
	_, err := NewDefault(nil, nil, testOptions(1))
	if !errors.Is(err, ErrSceneNotDefined) {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}

	sc, _ := scene.Preset("default")
	opts := testOptions(1)
	opts.SamplesPerPixel = 0
	_, err = NewDefault(sc, nil, opts)
	if !errors.Is(err, ErrInvalidSamplesPerPixel) {
		t.Fatalf("expected ErrInvalidSamplesPerPixel; got %v", err)
	}

	sc, _ = scene.Preset("default")
	sc.Spheres[0].Radius = 0
	_, err = NewDefault(sc, nil, testOptions(1))
	if !errors.Is(err, scene.ErrZeroRadius) {
		t.Fatalf("expected scene.ErrZeroRadius; got %v", err)
	}

	sc, _ = scene.Preset("default")
	sc.Camera.FocusDistance = 0
	_, err = NewDefault(sc, nil, testOptions(1))
	if !errors.Is(err, ErrCameraNotDefined) || !errors.Is(err, scene.ErrMissingFocusDistance) {
		t.Fatalf("expected camera error wrapping scene.ErrMissingFocusDistance; got %v", err)
	}
}

func TestRenderEmptyScene(t *testing.T) {
	sc, _ := scene.Preset("empty")
	r, err := NewDefault(sc, tracer.NaiveScheduler(), testOptions(3))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}

	fb := r.Frame()
	for y := uint32(0); y < fb.Height; y++ {
		for x := uint32(0); x < fb.Width; x++ {
			c := fb.At(x, y)
			if c[2] < 0.999 {
				t.Fatalf("expected sky blue channel at (%d, %d) to be saturated; got %v", x, y, c)
			}
		}
	}

	// The sky gets bluer towards the top of the frame
	if top, bottom := fb.At(12, 0), fb.At(12, fb.Height-1); top[0] >= bottom[0] {
		t.Fatalf("expected top pixel %v to be bluer than bottom pixel %v", top, bottom)
	}

	stats := r.Stats()
	if len(stats.Tracers) != 3 {
		t.Fatalf("expected stats for 3 tracers; got %d", len(stats.Tracers))
	}
	var rows uint32
	var percent float32
	for _, stat := range stats.Tracers {
		rows += stat.Rows
		percent += stat.FramePercent
		if stat.Blocks != 1 || stat.Rows != 4 {
			t.Fatalf("expected each tracer to render a single 4 row block; got %+v", stat)
		}
	}
	if rows != 12 || percent < 99.9 || percent > 100.1 {
		t.Fatalf("expected tracers to cover the whole frame; got %d rows (%f %%)", rows, percent)
	}
}

func TestRenderIndependentOfWorkerCount(t *testing.T) {
	sc, _ := scene.Preset("default")

	var frames []*Framebuffer
	for _, numWorkers := range []int{1, 2, 5} {
		r, err := NewDefault(sc, nil, testOptions(numWorkers))
		if err != nil {
			t.Fatal(err)
		}
		if err = r.Render(context.Background()); err != nil {
			r.Close()
			t.Fatal(err)
		}
		frames = append(frames, r.Frame())
		r.Close()
	}

	for index, fb := range frames[1:] {
		for offset := range fb.Pix {
			if fb.Pix[offset] != frames[0].Pix[offset] {
				t.Fatalf("[spec %d] expected framebuffer value at %d to be %f; got %f", index, offset, frames[0].Pix[offset], fb.Pix[offset])
			}
		}
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	sc, _ := scene.Preset("glass")
	r, err := NewDefault(sc, nil, testOptions(2))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}
	first := append([]float64(nil), r.Frame().Pix...)

	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}
	for offset, v := range r.Frame().Pix {
		if v != first[offset] {
			t.Fatalf("expected framebuffer value at %d to be %f; got %f", offset, first[offset], v)
		}
	}

	// Stats only account for the last frame
	var blocks uint32
	for _, stat := range r.Stats().Tracers {
		blocks += stat.Blocks
	}
	if blocks != 6 {
		t.Fatalf("expected 6 blocks in last frame stats; got %d", blocks)
	}
}

func TestRenderDebugNormals(t *testing.T) {
	sc := scene.NewScene()
	mat := sc.AddMaterial(scene.NewDiffuse("matte", types.Vec3{0.5, 0.5, 0.5}))
	sc.AddSphere(types.Vec3{0, 0, -1}, 0.5, mat)
	sc.Camera.Aperture = 0
	sc.Camera.FocusDistance = 1
	sc.Camera.Ratio = 2

	opts := testOptions(2)
	opts.Debug = true
	r, err := NewDefault(sc, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Pixels near the frame center see the sphere face pointing at the camera
	c := r.Frame().At(12, 6)
	if c[2] < 0.9 || c[0] < 0.4 || c[0] > 0.6 {
		t.Fatalf("expected a normal facing the camera near the frame center; got %v", c)
	}
}

func TestRenderInterrupted(t *testing.T) {
	sc, _ := scene.Preset("default")
	r, err := NewDefault(sc, nil, testOptions(2))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err = r.Render(ctx); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted; got %v", err)
	}

	// The renderer remains usable
	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestRenderAfterClose(t *testing.T) {
	sc, _ := scene.Preset("empty")
	r, err := NewDefault(sc, nil, testOptions(1))
	if err != nil {
		t.Fatal(err)
	}
	r.Close()

	if err = r.Render(context.Background()); !errors.Is(err, ErrNoTracers) {
		t.Fatalf("expected ErrNoTracers; got %v", err)
	}
}

func TestFrameStatsTable(t *testing.T) {
	stats := FrameStats{
		Tracers: []TracerStat{
			{Id: "cpu-0", Blocks: 2, Rows: 8, FramePercent: 66.7},
			{Id: "cpu-1", Blocks: 1, Rows: 4, FramePercent: 33.3},
		},
	}

	table := stats.Table()
	for _, exp := range []string{"Tracer", "cpu-0", "cpu-1", "66.7 %", "TOTAL"} {
		if !strings.Contains(table, exp) {
			t.Fatalf("expected table to contain %q; got:\n%s", exp, table)
		}
	}
}
