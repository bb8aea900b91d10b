package scene

import "github.com/achilleasa/polaris/types"

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	Point types.Vec3

	// The unit surface normal. It always points against the incoming ray;
	// FrontFace records whether the ray actually struck the outside.
	Normal    types.Vec3
	FrontFace bool

	// Ray parameter at the hit point.
	T float64

	// Index into the scene material list.
	MaterialIndex uint32
}

// Orient the record normal against the ray given the surface's outward normal.
func (h *HitRecord) SetFaceNormal(ray types.Ray, outwardNormal types.Vec3) {
	h.FrontFace = ray.Dir.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}
