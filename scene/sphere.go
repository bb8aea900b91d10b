package scene

import (
	"math"

	"github.com/achilleasa/polaris/types"
)

// A sphere primitive. A negative radius keeps the geometry unchanged but
// flips the outward normal, which turns the sphere into an inward-facing
// shell (e.g. the inner surface of a hollow glass ball).
type Sphere struct {
	Center        types.Vec3
	Radius        float64
	MaterialIndex uint32
}

// Intersect ray with the sphere, accepting hits with tMin <= t < tMax.
func (s *Sphere) Hit(ray types.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.LenSq()
	halfB := oc.Dot(ray.Dir)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if math.IsNaN(discriminant) {
		panic("scene: NaN while intersecting sphere")
	}
	if a == 0 || discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Prefer the nearest root that lies in the accepted range
	root := (-halfB - sqrtD) / a
	if root < tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root >= tMax {
			return HitRecord{}, false
		}
	}

	hit := HitRecord{
		T:             root,
		Point:         ray.At(root),
		MaterialIndex: s.MaterialIndex,
	}
	outwardNormal := hit.Point.Sub(s.Center).Div(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
