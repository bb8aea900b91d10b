package types

// A ray with an origin and a direction. The direction is not required to be
// normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Get the point along the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
