package lights

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/geometry"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// QuadLight represents a rectangular area light. It emits from its front
// face (the side its winding normal points toward) only.
type QuadLight struct {
	*geometry.Quad // Embed quad for hit testing
}

// NewQuadLight creates a quad light with the given emitted radiance
func NewQuadLight(corner, u, v core.Vec3, emission core.Color) *QuadLight {
	return &QuadLight{
		Quad: geometry.NewQuad(corner, u, v, material.NewEmissive(emission)),
	}
}

// Sample picks a uniform point on the quad and converts its area density to
// a solid-angle density at the shading point
func (ql *QuadLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	samplePoint := ql.Corner.Add(ql.U.Multiply(sample.X)).Add(ql.V.Multiply(sample.Y))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Multiply(1.0 / distance)

	// pdf_solidangle = pdf_area · distance² / cosθ, with θ measured at the
	// light surface
	cosTheta := math.Abs(ql.Normal.Dot(direction.Negate()))
	if cosTheta < 1e-8 {
		// Edge-on, no contribution
		return LightSample{
			Point:     samplePoint,
			Normal:    ql.Normal,
			Direction: direction,
			Distance:  distance,
		}
	}
	pdf := distance * distance / (cosTheta * ql.Area())

	// The back face is dark
	var emission core.Color
	if direction.Dot(ql.Normal) < 0 {
		emission = ql.Material.Emission()
	}

	return LightSample{
		Point:     samplePoint,
		Normal:    ql.Normal,
		Direction: direction,
		Distance:  distance,
		Emission:  emission,
		PDF:       pdf,
	}
}

// Power is quad area times average emitted radiance
func (ql *QuadLight) Power() float64 {
	emission := ql.Material.Emission()
	return ql.Area() * (emission.X + emission.Y + emission.Z) / 3.0
}
