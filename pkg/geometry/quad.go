package geometry

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// Quad represents a rectangular surface defined by a corner and two edge
// vectors. Its normal follows the winding of the edges (U × V) and is
// reported unchanged for hits from either side.
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Normal vector (computed from U × V)
	Material material.Material // Material of the quad
	d        float64           // Plane equation constant: normal · x = d
	w        core.Vec3         // Cached vector for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	normal := u.Cross(v).Normalize()

	// w = normal / (normal · (u × v)) for barycentric coordinate calculations
	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		d:        normal.Dot(corner),
		w:        w,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Check the hit point against the quad bounds in barycentric coordinates
	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Normal:   q.Normal,
		Material: q.Material,
	}, true
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// BoundingBox returns the axis-aligned bounding box spanning the four
// corners of the quad.
func (q *Quad) BoundingBox() AABB {
	return NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}
