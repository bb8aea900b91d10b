package types

import "math/rand/v2"

// Pick a random point inside the unit sphere using rejection sampling.
func RandomInUnitSphere(r *rand.Rand) Vec3 {
	for {
		p := Vec3{2*r.Float64() - 1, 2*r.Float64() - 1, 2*r.Float64() - 1}
		if p.LenSq() < 1.0 {
			return p
		}
	}
}

// Pick a random point inside the unit disk on the XY plane using rejection sampling.
func RandomInUnitDisk(r *rand.Rand) Vec3 {
	for {
		p := Vec3{2*r.Float64() - 1, 2*r.Float64() - 1, 0}
		if p.LenSq() < 1.0 {
			return p
		}
	}
}

// Create a generator with an independent, reproducible stream for the
// given (seed, stream) pair.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
