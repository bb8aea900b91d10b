package scene

import (
	"fmt"
	"sort"

	"github.com/achilleasa/polaris/types"
)

var presets = map[string]func() *Scene{
	"default": defaultPreset,
	"glass":   glassPreset,
	"empty":   emptyPreset,
}

// Build one of the built-in scenes by name.
func Preset(name string) (*Scene, error) {
	builder, exists := presets[name]
	if !exists {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return builder(), nil
}

// Get the sorted list of built-in scene names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// A large ground sphere with a matte ball flanked by a polished and a
// brushed metal ball.
func defaultPreset() *Scene {
	sc := NewScene()

	ground := sc.AddMaterial(NewDiffuse("ground", types.Vec3{0.8, 0.8, 0.0}))
	center := sc.AddMaterial(NewDiffuse("center", types.Vec3{0.7, 0.3, 0.3}))
	left := sc.AddMaterial(NewMetal("left", types.Vec3{0.8, 0.8, 0.8}, 0.3))
	right := sc.AddMaterial(NewMetal("right", types.Vec3{0.8, 0.6, 0.2}, 1.0))

	sc.AddSphere(types.Vec3{0, -100.5, -1}, 100, ground)
	sc.AddSphere(types.Vec3{0, 0, -1}, 0.5, center)
	sc.AddSphere(types.Vec3{-1, 0, -1}, 0.5, left)
	sc.AddSphere(types.Vec3{1, 0, -1}, 0.5, right)

	sc.Camera.Aperture = 0
	sc.Camera.FocusDistance = 1
	return sc
}

// A hollow glass ball between a matte and a metal ball viewed from above
// with a wide aperture focused on the glass.
func glassPreset() *Scene {
	sc := NewScene()

	ground := sc.AddMaterial(NewDiffuse("ground", types.Vec3{0.8, 0.8, 0.0}))
	center := sc.AddMaterial(NewDiffuse("center", types.Vec3{0.1, 0.2, 0.5}))
	glass := sc.AddMaterial(NewGlass("glass", 1.5, types.Vec3{1, 1, 1}))
	metal := sc.AddMaterial(NewMetal("metal", types.Vec3{0.8, 0.6, 0.2}, 0.0))

	sc.AddSphere(types.Vec3{0, -100.5, -1}, 100, ground)
	sc.AddSphere(types.Vec3{0, 0, -1}, 0.5, center)
	sc.AddSphere(types.Vec3{-1, 0, -1}, 0.5, glass)
	sc.AddSphere(types.Vec3{-1, 0, -1}, -0.45, glass)
	sc.AddSphere(types.Vec3{1, 0, -1}, 0.5, metal)

	sc.Camera.Eye = types.Vec3{3, 3, 2}
	sc.Camera.Look = types.Vec3{0, 0, -1}
	sc.Camera.FOV = 20
	sc.Camera.Aperture = 0.5
	sc.Camera.FocusDistance = sc.Camera.Eye.Sub(sc.Camera.Look).Len()
	return sc
}

// No geometry; every ray sees the background.
func emptyPreset() *Scene {
	sc := NewScene()
	sc.Camera.Aperture = 0
	sc.Camera.FocusDistance = 1
	return sc
}
