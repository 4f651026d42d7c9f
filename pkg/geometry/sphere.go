package geometry

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. The reported normal always
// points outward, also when the ray starts inside the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
	}, true
}

// BoundingBox returns the axis-aligned bounding box of the sphere.
func (s *Sphere) BoundingBox() AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
