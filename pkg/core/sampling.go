package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// OrthonormalBasis builds two unit vectors spanning the plane perpendicular to w.
// w must be a unit vector; (tangent, w, binormal) form a right-handed frame.
func OrthonormalBasis(w Vec3) (tangent, binormal Vec3) {
	var axis Vec3
	if math.Abs(w.X) > 0.1 {
		axis = NewVec3(0, 1, 0)
	} else {
		axis = NewVec3(1, 0, 0)
	}
	tangent = axis.Cross(w).Normalize()
	binormal = w.Cross(tangent)
	return tangent, binormal
}

// SampleUniformHemisphere generates a uniformly distributed direction in the
// hemisphere around normal. The pdf with respect to solid angle is 1/(2π).
func SampleUniformHemisphere(normal Vec3, sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	z := sample.Y
	sinTheta := math.Sqrt(math.Max(0, 1.0-z*z))

	tangent, binormal := OrthonormalBasis(normal)

	// Transform to world space
	return tangent.Multiply(math.Cos(phi) * sinTheta).
		Add(normal.Multiply(z)).
		Add(binormal.Multiply(math.Sin(phi) * sinTheta)).
		Normalize()
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around normal. The pdf with respect to solid angle is cos(θ)/π.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Generate point in unit disk using uniform random sampling
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	tangent, binormal := OrthonormalBasis(normal)

	// Transform to world space
	return tangent.Multiply(x).Add(binormal.Multiply(y)).Add(normal.Multiply(zCoord)).Normalize()
}

// SampleCone samples a direction uniformly within a cone
func SampleCone(direction Vec3, cosTotalWidth float64, sample Vec2) Vec3 {
	u, v := OrthonormalBasis(direction)

	// Sample direction within the cone
	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	// Convert to Cartesian coordinates in local space
	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	z := cosTheta

	// Transform to world space
	return u.Multiply(x).Add(v.Multiply(y)).Add(direction.Multiply(z))
}
