package material

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// LambertianSimple is a perfectly diffuse surface that samples the hemisphere
// uniformly. It is the reference against which the importance sampled
// Lambertian can be compared.
type LambertianSimple struct {
	emission    core.Color
	reflectance core.Color
}

// NewLambertianSimple creates a diffuse material with the given reflectance
func NewLambertianSimple(reflectance core.Color) *LambertianSimple {
	return &LambertianSimple{reflectance: reflectance}
}

// Emission returns the emitted radiance (always black)
func (l *LambertianSimple) Emission() core.Color {
	return l.emission
}

// Reflectance returns the surface albedo
func (l *LambertianSimple) Reflectance() core.Color {
	return l.reflectance
}

// Eval returns the Lambertian brdf, ρ/π
func (l *LambertianSimple) Eval(input, normal, output core.Vec3) core.Color {
	return l.reflectance.Divide(math.Pi)
}

// Sample draws a direction uniformly from the hemisphere around the normal
func (l *LambertianSimple) Sample(sampler core.Sampler, input, normal core.Vec3) (core.Vec3, PDF, core.Color) {
	dir := core.SampleUniformHemisphere(normal, sampler.Get2D())

	// pdf: 1/(2π)
	pdf := Density(1.0 / (2.0 * math.Pi))
	return dir, pdf, l.Eval(input, normal, dir)
}

// Lambertian is a perfectly diffuse surface importance sampled with the
// cosine-weighted hemisphere distribution.
type Lambertian struct {
	emission    core.Color
	reflectance core.Color
}

// NewLambertian creates a diffuse material with the given reflectance
func NewLambertian(reflectance core.Color) *Lambertian {
	return &Lambertian{reflectance: reflectance}
}

// Emission returns the emitted radiance (always black)
func (l *Lambertian) Emission() core.Color {
	return l.emission
}

// Reflectance returns the surface albedo
func (l *Lambertian) Reflectance() core.Color {
	return l.reflectance
}

// Eval returns the Lambertian brdf, ρ/π
func (l *Lambertian) Eval(input, normal, output core.Vec3) core.Color {
	return l.reflectance.Divide(math.Pi)
}

// Sample importance samples the hemisphere with pdf cosθ/π
func (l *Lambertian) Sample(sampler core.Sampler, input, normal core.Vec3) (core.Vec3, PDF, core.Color) {
	dir := core.SampleCosineHemisphere(normal, sampler.Get2D())

	// pdf: cosθ/π, with the cosine taken from the sampled direction
	pdf := Density(normal.Dot(dir) / math.Pi)
	return dir, pdf, l.Eval(input, normal, dir)
}
