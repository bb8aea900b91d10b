package tracer

import (
	"math"
	"math/rand/v2"

	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/types"
)

// Rays spawned at a surface ignore intersections closer than this distance
// to avoid re-hitting the surface they originate from.
const ShadowAcneEpsilon = 0.001

var (
	white   = types.Vec3{1, 1, 1}
	skyBlue = types.Vec3{0.5, 0.7, 1.0}
)

// Calculate the color carried by a ray. Each scattering event multiplies the
// color returned by the recursive call with the material attenuation. Once
// depth reaches zero no more light is gathered.
func Radiance(ray types.Ray, sc *scene.Scene, depth uint32, rng *rand.Rand) types.Vec3 {
	if depth == 0 {
		return types.Vec3{}
	}

	hit, ok := sc.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !ok {
		return Background(ray)
	}

	scattered, attenuation, ok := sc.Material(&hit).Scatter(ray, &hit, rng)
	if !ok {
		return types.Vec3{}
	}

	return attenuation.MulVec(Radiance(scattered, sc, depth-1, rng))
}

// Get the sky color for a ray that escapes the scene.
func Background(ray types.Ray) types.Vec3 {
	t := 0.5 * (ray.Dir.Normalize()[1] + 1.0)
	return white.Lerp(skyBlue, t)
}

// Shade the closest hit using its surface normal mapped to [0, 1]. Rays that
// miss the scene get the background color.
func NormalColor(ray types.Ray, sc *scene.Scene) types.Vec3 {
	hit, ok := sc.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !ok {
		return Background(ray)
	}

	return hit.Normal.Add(white).Mul(0.5)
}

// Estimate the linear color of pixel (x, y) by averaging spp jittered camera
// samples. Row 0 is the top of the frame.
func SamplePixel(cam *scene.Camera, sc *scene.Scene, x, y, frameW, frameH, spp, depth uint32, rng *rand.Rand) types.Vec3 {
	if spp == 0 {
		return types.Vec3{}
	}

	// Single pixel wide/tall frames sample the first column/row of the image plane
	denomW := float64(max(frameW, 2) - 1)
	denomH := float64(max(frameH, 2) - 1)

	var sum types.Vec3
	for sample := uint32(0); sample < spp; sample++ {
		s := (float64(x) + rng.Float64()) / denomW
		t := (float64(y) + rng.Float64()) / denomH
		sum = sum.Add(Radiance(cam.GetRay(s, t, rng), sc, depth, rng))
	}

	return sum.Div(float64(spp))
}
