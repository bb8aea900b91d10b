package scene

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/polaris/types"
	"github.com/olekukonko/tablewriter"
)

// A scene contains an ordered list of primitives and the material list they
// index into. A scene must not be modified while it is being rendered.
type Scene struct {
	Materials []Material
	Spheres   []Sphere
	Camera    CameraConfig
}

// Create a new empty scene using the default camera settings.
func NewScene() *Scene {
	return &Scene{
		Materials: make([]Material, 0),
		Spheres:   make([]Sphere, 0),
		Camera:    DefaultCameraConfig(),
	}
}

// Append a material and return its index.
func (sc *Scene) AddMaterial(m Material) uint32 {
	sc.Materials = append(sc.Materials, m)
	return uint32(len(sc.Materials) - 1)
}

// Append a sphere that uses the material at matIndex.
func (sc *Scene) AddSphere(center types.Vec3, radius float64, matIndex uint32) {
	sc.Spheres = append(sc.Spheres, Sphere{Center: center, Radius: radius, MaterialIndex: matIndex})
}

// Lookup a material index by name.
func (sc *Scene) MaterialIndex(name string) (uint32, bool) {
	for index, m := range sc.Materials {
		if m.Name == name {
			return uint32(index), true
		}
	}
	return 0, false
}

// Get the material referenced by a hit record.
func (sc *Scene) Material(hit *HitRecord) *Material {
	return &sc.Materials[hit.MaterialIndex]
}

// Find the closest intersection of ray with any of the scene primitives in
// the [tMin, tMax) range. Every primitive is tested; each hit shrinks the
// range so the surviving record is the closest one regardless of order.
func (sc *Scene) Hit(ray types.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	for index := range sc.Spheres {
		if hit, ok := sc.Spheres[index].Hit(ray, tMin, tMax); ok {
			hitAnything = true
			tMax = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// Check that all materials are valid and all primitives reference an
// existing material.
func (sc *Scene) Validate() error {
	for index := range sc.Materials {
		if err := sc.Materials[index].Validate(); err != nil {
			return err
		}
	}

	for index, s := range sc.Spheres {
		if int(s.MaterialIndex) >= len(sc.Materials) {
			return fmt.Errorf("sphere %d: %w (index %d)", index, ErrInvalidMaterialIndex, s.MaterialIndex)
		}
		if s.Radius == 0 {
			return fmt.Errorf("sphere %d: %w", index, ErrZeroRadius)
		}
	}

	return nil
}

// Generate a table with scene statistics.
func (sc *Scene) Stats() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Material", "Type", "Albedo", "Params", "Spheres"})

	usage := make([]int, len(sc.Materials))
	for _, s := range sc.Spheres {
		if int(s.MaterialIndex) < len(usage) {
			usage[s.MaterialIndex]++
		}
	}

	for index, m := range sc.Materials {
		var params string
		switch m.Type {
		case Metal:
			params = fmt.Sprintf("fuzz: %.2f", m.Fuzz)
		case Glass:
			params = fmt.Sprintf("ior: %.2f", m.IOR)
		}
		table.Append([]string{
			m.Name,
			m.Type.String(),
			m.Albedo.String(),
			params,
			fmt.Sprintf("%d", usage[index]),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", len(sc.Spheres))})
	table.Render()

	return buf.String()
}
