package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/achilleasa/polaris/types"
)

func TestMaterialTypeNames(t *testing.T) {
	for _, mt := range []MaterialType{Diffuse, Metal, Glass} {
		parsed, err := MaterialTypeFromName(mt.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != mt {
			t.Fatalf("expected %s; got %s", mt, parsed)
		}
	}

	if _, err := MaterialTypeFromName("plastic"); !errors.Is(err, ErrUnknownMaterialType) {
		t.Fatalf("expected ErrUnknownMaterialType; got %v", err)
	}
	if s := materialInvalid.String(); s != "invalid" {
		t.Fatalf("expected invalid; got %s", s)
	}
}

func TestMetalScatterMirror(t *testing.T) {
	albedo := types.Vec3{0.8, 0.6, 0.2}
	m := NewMetal("mirror", albedo, 0)
	hit := &HitRecord{Point: types.Vec3{0, 0, 0}, Normal: types.Vec3{0, 1, 0}, FrontFace: true}
	rayIn := types.Ray{Origin: types.Vec3{-1, 1, 0}, Dir: types.Vec3{1, -1, 0}}

	out, attenuation, ok := m.Scatter(rayIn, hit, types.NewRand(1, 1))
	if !ok {
		t.Fatal("expected mirror to scatter")
	}

	// The incoming direction is normalized before reflecting
	exp := types.Vec3{1, 1, 0}.Normalize()
	if !out.Dir.Normalize().ApproxEqual(exp, testEpsilon) {
		t.Fatalf("expected reflected direction %v; got %v", exp, out.Dir)
	}
	if !out.Dir.Cross(types.Vec3{1, 1, 0}).IsNearZero() {
		t.Fatalf("expected reflected direction parallel to (1, 1, 0); got %v", out.Dir)
	}
	if out.Origin != hit.Point {
		t.Fatalf("expected scattered ray to start at the hit point; got %v", out.Origin)
	}
	if attenuation != albedo {
		t.Fatalf("expected attenuation %v; got %v", albedo, attenuation)
	}
}

func TestMetalScatterAbsorbs(t *testing.T) {
	m := NewMetal("grazing", types.Vec3{1, 1, 1}, 1.0)
	hit := &HitRecord{Normal: types.Vec3{0, 1, 0}, FrontFace: true}

	// A grazing ray with maximum fuzz will sometimes be pushed below the surface
	rng := types.NewRand(3, 4)
	absorbed := 0
	for i := 0; i < 1000; i++ {
		out, _, ok := m.Scatter(types.Ray{Dir: types.Vec3{1, -0.01, 0}}, hit, rng)
		if !ok {
			absorbed++
			continue
		}
		if out.Dir.Dot(hit.Normal) < 0 {
			t.Fatalf("[iteration %d] expected scattered rays to leave the surface; got %v", i, out.Dir)
		}
	}

	if absorbed == 0 {
		t.Fatal("expected some grazing rays to be absorbed")
	}
}

func TestDiffuseScatter(t *testing.T) {
	albedo := types.Vec3{0.5, 0.5, 0.5}
	m := NewDiffuse("matte", albedo)
	hit := &HitRecord{Point: types.Vec3{1, 2, 3}, Normal: types.Vec3{0, 0, 1}, FrontFace: true}

	rng := types.NewRand(5, 6)
	for i := 0; i < 1000; i++ {
		out, attenuation, ok := m.Scatter(types.Ray{Dir: types.Vec3{0, 0, -1}}, hit, rng)
		if !ok {
			t.Fatalf("[iteration %d] expected diffuse material to always scatter", i)
		}
		if attenuation != albedo {
			t.Fatalf("[iteration %d] expected attenuation %v; got %v", i, albedo, attenuation)
		}
		if out.Dir.IsNearZero() {
			t.Fatalf("[iteration %d] expected a non-degenerate direction", i)
		}
		if out.Dir.Dot(hit.Normal) < 0 {
			t.Fatalf("[iteration %d] expected direction %v in the normal's hemisphere", i, out.Dir)
		}
		if math.Abs(out.Dir.Len()-1) > 1e-9 {
			t.Fatalf("[iteration %d] expected unit direction; got length %f", i, out.Dir.Len())
		}
	}
}

func TestGlassTotalInternalReflection(t *testing.T) {
	m := NewGlass("glass", 1.5, types.Vec3{1, 1, 1})

	// Exiting the glass (back face) at 60deg; critical angle for 1.5 is ~41.8deg
	normal := types.Vec3{0, -1, 0}
	theta := 60 * math.Pi / 180
	dir := types.Vec3{math.Sin(theta), math.Cos(theta), 0}
	hit := &HitRecord{Normal: normal, FrontFace: false}

	cosTheta := math.Min(dir.Neg().Dot(normal), 1.0)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	if !CannotRefract(1.5, sinTheta) {
		t.Fatalf("expected ratio*sin(theta) = %f to exceed 1", 1.5*sinTheta)
	}

	expDir := dir.Reflect(normal)
	rng := types.NewRand(7, 8)
	for i := 0; i < 1000; i++ {
		out, attenuation, ok := m.Scatter(types.Ray{Dir: dir}, hit, rng)
		if !ok {
			t.Fatalf("[iteration %d] expected glass to always scatter", i)
		}
		if !out.Dir.ApproxEqual(expDir, 1e-9) {
			t.Fatalf("[iteration %d] expected reflection %v; got %v", i, expDir, out.Dir)
		}
		if attenuation != m.Albedo {
			t.Fatalf("[iteration %d] expected attenuation %v; got %v", i, m.Albedo, attenuation)
		}
	}
}

func TestGlassRefractsAtNormalIncidence(t *testing.T) {
	m := NewGlass("glass", 1.5, types.Vec3{1, 1, 1})
	hit := &HitRecord{Normal: types.Vec3{0, 1, 0}, FrontFace: true}

	// At normal incidence Schlick gives r0 = 0.04 so most rays go straight through
	rng := types.NewRand(9, 10)
	refracted := 0
	const samples = 10000
	for i := 0; i < samples; i++ {
		out, _, _ := m.Scatter(types.Ray{Dir: types.Vec3{0, -2, 0}}, hit, rng)
		if out.Dir.ApproxEqual(types.Vec3{0, -1, 0}, 1e-9) {
			refracted++
		} else if !out.Dir.ApproxEqual(types.Vec3{0, 1, 0}, 1e-9) {
			t.Fatalf("[iteration %d] expected straight refraction or reflection; got %v", i, out.Dir)
		}
	}

	frac := float64(refracted) / samples
	if frac < 0.94 || frac > 0.98 {
		t.Fatalf("expected ~96%% of rays to refract; got %.2f%%", frac*100)
	}
}

func TestReflectanceBounds(t *testing.T) {
	for _, ior := range []float64{0.1, 0.5, 1, 1.33, 1.5, 2.4, 10} {
		for step := 0; step <= 100; step++ {
			cos := float64(step) / 100
			r := Reflectance(cos, ior)
			if r < 0 || r > 1 {
				t.Fatalf("expected reflectance(%f, %f) in [0, 1]; got %f", cos, ior, r)
			}
		}
	}

	if r := Reflectance(0, 1.5); math.Abs(r-1) > testEpsilon {
		t.Fatalf("expected grazing reflectance to be 1; got %f", r)
	}
	if r := Reflectance(1, 1.5); math.Abs(r-0.04) > testEpsilon {
		t.Fatalf("expected normal incidence reflectance to be 0.04; got %f", r)
	}
}

func TestScatterInvalidMaterialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected scatter on an invalid material to panic")
		}
	}()

	m := Material{Name: "broken"}
	m.Scatter(types.Ray{}, &HitRecord{}, types.NewRand(0, 0))
}
