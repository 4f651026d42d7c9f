package geometry

import (
	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() AABB
}
