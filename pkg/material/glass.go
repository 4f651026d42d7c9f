package material

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// Glass is an ideal dielectric: a smooth interface between vacuum and a
// medium with the given index of refraction. A ray either reflects or
// refracts, chosen by Russian roulette weighted with the Fresnel reflectance.
type Glass struct {
	emission    core.Color
	reflectance core.Color
	ior         float64
}

// NewGlass creates a dielectric material with the given reflectance and
// index of refraction
func NewGlass(reflectance core.Color, ior float64) *Glass {
	return &Glass{reflectance: reflectance, ior: ior}
}

// Emission returns the emitted radiance (always black)
func (g *Glass) Emission() core.Color {
	return g.emission
}

// Reflectance returns the surface albedo
func (g *Glass) Reflectance() core.Color {
	return g.reflectance
}

// Eval returns the specular brdf stripped of its Dirac delta. The full brdf
// is ρ·δ/cosθ; the delta cancels against the matching delta in the pdf during
// integration, so only ρ/dot(normal, output) is kept. Light arrives along
// output when tracing backward from the camera, hence the cosine uses output.
// The Fresnel weights Fr and Ft are not included here; Sample applies them.
func (g *Glass) Eval(input, normal, output core.Vec3) core.Color {
	return g.reflectance.Multiply(Delta).Divide(normal.Dot(output))
}

// Sample chooses between reflection and refraction and returns the picked
// direction with the branch probability folded into its pdf.
func (g *Glass) Sample(sampler core.Sampler, input, normal core.Vec3) (core.Vec3, PDF, core.Color) {
	// Orient the normal against the incoming ray so both sides of the
	// surface work
	nowNormal := normal
	if normal.Dot(input) >= 0 {
		nowNormal = normal.Negate()
	}
	into := normal.Dot(nowNormal) > 0 // Whether the ray enters the object

	const n1 = 1.0 // Refractive index of vacuum
	n2 := g.ior
	nn := n1 / n2
	if !into {
		nn = n2 / n1
	}

	// Snell's law gives the squared cosine of the refraction angle
	ddn := input.Dot(nowNormal)
	cos2t2 := 1.0 - nn*nn*(1.0-ddn*ddn)

	reflectionDir := input.Reflect(nowNormal)
	if cos2t2 < 0 {
		// Total internal reflection
		return reflectionDir, DeltaBranch(1.0), g.Eval(input, normal, reflectionDir)
	}

	refractionDir := input.Multiply(nn).Subtract(nowNormal.Multiply(ddn*nn + math.Sqrt(cos2t2)))

	// Fresnel equations for unpolarized light
	cost1 := input.Negate().Dot(nowNormal)
	cost2 := math.Sqrt(cos2t2)
	rParallel := (nn*cost1 - cost2) / (nn*cost1 + cost2)
	rPerpendicular := (cost1 - nn*cost2) / (cost1 + nn*cost2)
	fr := 0.5 * (rParallel*rParallel + rPerpendicular*rPerpendicular)

	// Radiance carried by the ray is compressed by the squared ratio of the
	// refractive indices when crossing between media
	factor := nn * nn
	ft := (1.0 - fr) * factor

	// Russian roulette between the branches, with the Fresnel reflectance as
	// the reflection probability
	probability := fr
	if sampler.Get1D() < probability { // Reflection
		return reflectionDir, DeltaBranch(probability), g.Eval(input, normal, reflectionDir).Multiply(fr)
	}

	// Refraction. The brdf keeps the reflection direction in its cosine;
	// the sign and cosine ratio this introduces cancel between the entry
	// and exit interfaces of a closed object.
	return refractionDir, DeltaBranch(1.0 - probability), g.Eval(input, normal, reflectionDir).Multiply(ft)
}
