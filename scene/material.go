package scene

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/achilleasa/polaris/types"
)

// MaterialType represents the surface types supported by the tracer.
type MaterialType uint8

const (
	materialInvalid MaterialType = iota
	Diffuse
	Metal
	Glass
)

// Lookup material type by its name.
func MaterialTypeFromName(name string) (MaterialType, error) {
	switch name {
	case "diffuse":
		return Diffuse, nil
	case "metal":
		return Metal, nil
	case "glass":
		return Glass, nil
	}

	return materialInvalid, fmt.Errorf("%w %q", ErrUnknownMaterialType, name)
}

func (t MaterialType) String() string {
	switch t {
	case Diffuse:
		return "diffuse"
	case Metal:
		return "metal"
	case Glass:
		return "glass"
	}

	return "invalid"
}

// Defines a scene material. Materials are stored once per scene and
// referenced by index from the primitives that use them. Only the fields
// relevant to the material Type are used.
type Material struct {
	Name string

	// The type of the material.
	Type MaterialType

	// The fraction of light retained on each bounce.
	Albedo types.Vec3

	// Reflection perturbation for metals in the [0, 1] range.
	Fuzz float64

	// Index of refraction (glass only).
	IOR float64
}

// Create a diffuse (lambertian) material.
func NewDiffuse(name string, albedo types.Vec3) Material {
	return Material{Name: name, Type: Diffuse, Albedo: albedo}
}

// Create a metal material.
func NewMetal(name string, albedo types.Vec3, fuzz float64) Material {
	return Material{Name: name, Type: Metal, Albedo: albedo, Fuzz: fuzz}
}

// Create a glass material. Clear glass uses a white albedo.
func NewGlass(name string, ior float64, albedo types.Vec3) Material {
	return Material{Name: name, Type: Glass, Albedo: albedo, IOR: ior}
}

// Check material parameters.
func (m *Material) Validate() error {
	switch m.Type {
	case Diffuse:
	case Metal:
		if m.Fuzz < 0 {
			return fmt.Errorf("material %q: %w", m.Name, ErrNegativeFuzziness)
		}
		if m.Fuzz > 1 {
			return fmt.Errorf("material %q: %w", m.Name, ErrFuzzinessOutOfRange)
		}
	case Glass:
		if !(m.IOR > 0) {
			return fmt.Errorf("material %q: %w", m.Name, ErrInvalidRefractiveIndex)
		}
	default:
		return fmt.Errorf("material %q: %w", m.Name, ErrUnknownMaterialType)
	}

	return nil
}

// Scatter an incoming ray that hit a surface with this material. It returns
// the scattered ray, the attenuation to apply to the light carried by that
// ray and false if the ray got absorbed.
func (m *Material) Scatter(rayIn types.Ray, hit *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	switch m.Type {
	case Diffuse:
		return m.scatterDiffuse(hit, rng)
	case Metal:
		return m.scatterMetal(rayIn, hit, rng)
	case Glass:
		return m.scatterGlass(rayIn, hit, rng)
	}

	panic(fmt.Sprintf("scene: scatter called on material %q with unsupported type %d", m.Name, m.Type))
}

func (m *Material) scatterDiffuse(hit *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	dir := hit.Normal.Add(types.RandomInUnitSphere(rng)).Normalize()

	// The random offset may cancel out the normal
	if dir.IsNearZero() {
		dir = hit.Normal
	}

	return types.Ray{Origin: hit.Point, Dir: dir}, m.Albedo, true
}

func (m *Material) scatterMetal(rayIn types.Ray, hit *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	dir := rayIn.Dir.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		dir = dir.Add(types.RandomInUnitSphere(rng).Mul(m.Fuzz))
	}

	if dir.Dot(hit.Normal) < 0 {
		return types.Ray{}, m.Albedo, false
	}

	return types.Ray{Origin: hit.Point, Dir: dir}, m.Albedo, true
}

func (m *Material) scatterGlass(rayIn types.Ray, hit *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	etaIn, etaOut := 1.0, m.IOR
	if !hit.FrontFace {
		etaIn, etaOut = m.IOR, 1.0
	}
	ratio := etaIn / etaOut

	unitDir := rayIn.Dir.Normalize()
	cosTheta := types.MinStrict(unitDir.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if CannotRefract(ratio, sinTheta) || Reflectance(cosTheta, ratio) > rng.Float64() {
		dir = unitDir.Reflect(hit.Normal)
	} else {
		dir = unitDir.Refract(hit.Normal, etaIn, etaOut)
	}

	return types.Ray{Origin: hit.Point, Dir: dir}, m.Albedo, true
}

// Returns true if light travelling through an interface with the given
// index ratio and incidence sine is totally internally reflected.
func CannotRefract(ratio, sinTheta float64) bool {
	return ratio*sinTheta > 1.0
}

// Calculate Fresnel reflectance using Schlick's approximation.
func Reflectance(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
