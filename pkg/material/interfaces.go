package material

import (
	"github.com/Aofusa/gemspt-go/pkg/core"
)

// Delta stands in for the Dirac delta factor in the pdf of a perfectly
// specular interaction. The matching delta in the brdf cancels against it in
// the Monte Carlo estimator, so its numeric value is simply 1.
const Delta = 1.0

// PDF is the probability density of a sampled direction, measured with
// respect to solid angle. IsDelta marks densities that carry a Dirac delta
// factor; their Value is the discrete probability of the chosen specular
// branch and they must be excluded from density-based strategies such as
// direct light sampling.
type PDF struct {
	Value   float64
	IsDelta bool
}

// Density returns an ordinary solid-angle density.
func Density(value float64) PDF {
	return PDF{Value: value}
}

// DeltaBranch returns the pdf of a specular branch chosen with the given
// probability.
func DeltaBranch(probability float64) PDF {
	return PDF{Value: Delta * probability, IsDelta: true}
}

// Material describes how a surface emits and reflects light.
//
// Directions follow the backward tracing convention: input is the direction
// the ray travels into the surface (input = -ω), and output is the direction
// the path continues in (output = ω'). Both are unit vectors. The normal is
// always the true outward geometric normal; materials that distinguish the
// inside of an object handle the orientation themselves.
type Material interface {
	// Emission returns the radiance emitted by the surface.
	Emission() core.Color

	// Reflectance returns the surface albedo. The integrator uses its
	// largest component as the Russian roulette continuation probability.
	Reflectance() core.Color

	// Eval returns the brdf value for the given direction pair.
	Eval(input, normal, output core.Vec3) core.Color

	// Sample draws a continuation direction for the path and returns it
	// together with its pdf and the brdf value for that direction. For
	// specular materials the brdf value includes the Fresnel weights, which
	// Eval alone does not provide.
	Sample(sampler core.Sampler, input, normal core.Vec3) (core.Vec3, PDF, core.Color)
}

// HitRecord contains information about a ray-surface intersection. Normal is
// the true outward normal of the surface, regardless of which side the ray
// arrived from.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal at intersection
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}
