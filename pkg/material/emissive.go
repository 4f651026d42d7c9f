package material

import (
	"github.com/Aofusa/gemspt-go/pkg/core"
)

// Emissive is a pure light source. Paths terminate when they reach an
// emissive surface, so its brdf is never evaluated or sampled.
type Emissive struct {
	emission    core.Color
	reflectance core.Color
}

// NewEmissive creates a light source material with the given emitted radiance
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{emission: emission}
}

// Emission returns the emitted radiance
func (e *Emissive) Emission() core.Color {
	return e.emission
}

// Reflectance returns the surface albedo (always black)
func (e *Emissive) Reflectance() core.Color {
	return e.reflectance
}

// Eval panics: emissive surfaces have no brdf
func (e *Emissive) Eval(input, normal, output core.Vec3) core.Color {
	panic("material: Eval called on an emissive surface")
}

// Sample panics: emissive surfaces have no brdf
func (e *Emissive) Sample(sampler core.Sampler, input, normal core.Vec3) (core.Vec3, PDF, core.Color) {
	panic("material: Sample called on an emissive surface")
}
