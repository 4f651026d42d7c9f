package lights

import "github.com/Aofusa/gemspt-go/pkg/core"

// Light interface for objects that can be sampled for direct lighting
type Light interface {
	// Sample draws a point on the light as seen from the shading point.
	// The returned direction points FROM the shading point TO the light.
	Sample(point core.Vec3, sample core.Vec2) LightSample

	// Power returns the total emitted power, up to a constant factor shared
	// by all lights. Only the ratios matter; the selector normalizes.
	Power() float64
}

// LightSample contains information about a sampled point on a light. A PDF
// of zero marks a sample with no usable contribution.
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Normal    core.Vec3 // Normal at the light sample point
	Direction core.Vec3 // Direction from shading point to light
	Distance  float64   // Distance to the light sample
	Emission  core.Vec3 // Emitted radiance toward the shading point
	PDF       float64   // Solid-angle probability density of this sample
}
