package material

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// Phong is the normalized Phong brdf: a glossy lobe of exponent n around the
// mirror reflection direction, scaled so the lobe integrates to the
// reflectance. Larger exponents give tighter highlights.
type Phong struct {
	emission    core.Color
	reflectance core.Color
	n           float64
}

// NewPhong creates a glossy material with the given reflectance and exponent
func NewPhong(reflectance core.Color, n float64) *Phong {
	return &Phong{reflectance: reflectance, n: n}
}

// Emission returns the emitted radiance (always black)
func (p *Phong) Emission() core.Color {
	return p.emission
}

// Reflectance returns the surface albedo
func (p *Phong) Reflectance() core.Color {
	return p.reflectance
}

// Eval returns the normalized Phong brdf, ρ·(n+2)/(2π)·cos^n(α), where α is
// the angle between output and the mirror reflection of input.
func (p *Phong) Eval(input, normal, output core.Vec3) core.Color {
	if normal.Dot(output) < 0 {
		// Directions below the horizon carry nothing
		return core.NewVec3(0, 0, 0)
	}

	reflectionDir := input.Reflect(normal)
	cosAlpha := reflectionDir.Dot(output)
	if cosAlpha < 0 {
		cosAlpha = 0
	}

	return p.reflectance.Multiply((p.n + 2.0) / (2.0 * math.Pi) * math.Pow(cosAlpha, p.n))
}

// Sample importance samples the lobe shape itself, pdf = (n+1)/(2π)·cos^n(α)
func (p *Phong) Sample(sampler core.Sampler, input, normal core.Vec3) (core.Vec3, PDF, core.Color) {
	reflectionDir := input.Reflect(normal)
	tangent, binormal := core.OrthonormalBasis(reflectionDir)

	u := sampler.Get2D()
	phi := 2.0 * math.Pi * u.X
	theta := math.Acos(math.Pow(u.Y, 1.0/(p.n+1.0)))

	dir := tangent.Multiply(math.Sin(theta) * math.Cos(phi)).
		Add(reflectionDir.Multiply(math.Cos(theta))).
		Add(binormal.Multiply(math.Sin(theta) * math.Sin(phi)))

	cosAlpha := reflectionDir.Dot(dir)
	if cosAlpha < 0 {
		cosAlpha = 0
	}
	pdf := Density((p.n + 1.0) / (2.0 * math.Pi) * math.Pow(cosAlpha, p.n))

	return dir, pdf, p.Eval(input, normal, dir)
}
