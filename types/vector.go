package types

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Components whose absolute value is below this threshold are treated as zero.
const NearZeroEpsilon = 1e-8

type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Component-wise multiplication.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Divide a 3 component vector by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return v.Mul(1.0 / s)
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize 3 component vector. Vectors whose length is (close to) zero
// normalize to the zero vector; callers that cannot tolerate a zero result
// must check with IsNearZero first.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < NearZeroEpsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Returns true if all components are within NearZeroEpsilon of zero.
func (v Vec3) IsNearZero() bool {
	return math.Abs(v[0]) < NearZeroEpsilon &&
		math.Abs(v[1]) < NearZeroEpsilon &&
		math.Abs(v[2]) < NearZeroEpsilon
}

// Reflect v around normal n: v - 2*dot(v,n)*n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract unit vector v through a surface with unit normal n when moving from
// a medium with index etaIn into a medium with index etaOut. The result is
// the sum of the components perpendicular and parallel to the normal.
func (v Vec3) Refract(n Vec3, etaIn, etaOut float64) Vec3 {
	cosTheta := MinStrict(v.Neg().Dot(n), 1.0)
	outPerp := v.Add(n.Mul(cosTheta)).Mul(etaIn / etaOut)
	outParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - outPerp.LenSq())))
	return outPerp.Add(outParallel)
}

// Linearly interpolate towards v2.
func (v Vec3) Lerp(v2 Vec3, t float64) Vec3 {
	return v.Mul(1.0 - t).Add(v2.Mul(t))
}

// Raise each component to exp.
func (v Vec3) Pow(exp float64) Vec3 {
	return Vec3{math.Pow(v[0], exp), math.Pow(v[1], exp), math.Pow(v[2], exp)}
}

// Clamp each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	out := v
	for i := range out {
		out[i] = math.Max(lo, math.Min(hi, out[i]))
	}
	return out
}

// Returns true if every component of v is within eps of the matching component of v2.
func (v Vec3) ApproxEqual(v2 Vec3, eps float64) bool {
	return math.Abs(v[0]-v2[0]) <= eps &&
		math.Abs(v[1]-v2[1]) <= eps &&
		math.Abs(v[2]-v2[2]) <= eps
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", v[0], v[1], v[2])
}

// Return the smaller of a and b. Unlike math.Min, a NaN operand is treated
// as a broken invariant and panics instead of silently propagating.
func MinStrict(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic("types: comparing NaN values")
	}
	if a < b {
		return a
	}
	return b
}
