package renderer

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// CameraConfig describes a pinhole camera placement.
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is aimed at
	Up          core.Vec3 // World up vector, typically (0,1,0)
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// Camera generates rays for rendering.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera from its placement config.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := viewportHeight * config.AspectRatio

	// Orthonormal camera basis: w points backward, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates a ray through screen coordinates (s, t) where 0 <= s,t <= 1,
// with (0,0) at the lower left of the viewport.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}
