package lights

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/geometry"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// SphereLight represents a spherical area light
type SphereLight struct {
	*geometry.Sphere // Embed sphere for hit testing
}

// NewSphereLight creates a spherical light with the given emitted radiance
func NewSphereLight(center core.Vec3, radius float64, emission core.Color) *SphereLight {
	return &SphereLight{
		Sphere: geometry.NewSphere(center, radius, material.NewEmissive(emission)),
	}
}

// Sample draws a direction uniformly within the cone of directions subtended
// by the sphere as seen from the shading point
func (sl *SphereLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()

	// A shading point inside the light gets no direct-light sample; the path
	// reaches the emissive surface on its own
	if distanceToCenter <= sl.Radius {
		return LightSample{}
	}

	// Half-angle of the cone subtended by the sphere
	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	direction := core.SampleCone(toCenter.Normalize(), cosThetaMax, sample)

	// Intersect to find the actual point on the sphere surface
	ray := core.NewRay(point, direction)
	hit, ok := sl.Sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		// Cone edge samples can graze past the silhouette numerically
		return LightSample{}
	}

	// Uniform over the cone: pdf = 1/(2π(1 - cosθmax))
	pdf := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	return LightSample{
		Point:     hit.Point,
		Normal:    hit.Normal,
		Direction: direction,
		Distance:  hit.T,
		Emission:  sl.Material.Emission(),
		PDF:       pdf,
	}
}

// Power is surface area times average emitted radiance
func (sl *SphereLight) Power() float64 {
	emission := sl.Material.Emission()
	area := 4.0 * math.Pi * sl.Radius * sl.Radius
	return area * (emission.X + emission.Y + emission.Z) / 3.0
}
