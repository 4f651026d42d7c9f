package geometry

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min core.Vec3
	Max core.Vec3
}

// NewAABB creates a bounding box from its corner points.
func NewAABB(min, max core.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates the smallest box that bounds all given points.
func NewAABBFromPoints(points ...core.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests whether the ray passes through the box within [tMin, tMax],
// using the slab method.
func (aabb AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64
		switch axis {
		case 0:
			min, max = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			min, max = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			min, max = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// Rays parallel to the slab hit only if they start inside it
		if math.Abs(direction) < 1e-8 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns a box bounding both this box and the other.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: core.Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: core.Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the box's center point.
func (aabb AABB) Center() core.Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis.
func (aabb AABB) Size() core.Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
