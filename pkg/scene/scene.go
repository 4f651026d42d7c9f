package scene

import (
	"math"

	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/geometry"
	"github.com/Aofusa/gemspt-go/pkg/lights"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// intersectionEpsilon rejects hits closer than this to the ray origin,
// which prevents rays from re-hitting the surface they just left.
const intersectionEpsilon = 0.001

// Scene holds the shapes and lights to render plus the background gradient
// returned for rays that escape.
type Scene struct {
	shapes           []geometry.Shape
	lightList        []lights.Light
	bvh              *geometry.BVH
	lightSelector    *lights.Selector
	BackgroundTop    core.Color
	BackgroundBottom core.Color
}

// NewScene creates an empty scene with a vertical background gradient.
// Pass black for both colors to disable environment lighting.
func NewScene(backgroundTop, backgroundBottom core.Color) *Scene {
	return &Scene{
		BackgroundTop:    backgroundTop,
		BackgroundBottom: backgroundBottom,
	}
}

// Add appends shapes to the scene.
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.shapes = append(s.shapes, shapes...)
	s.bvh = nil
}

// AddSphereLight adds a spherical area light. The light is registered both
// as a shape, so camera rays can hit it, and as a sampling target for
// direct lighting.
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Color) *lights.SphereLight {
	light := lights.NewSphereLight(center, radius, emission)
	s.shapes = append(s.shapes, light)
	s.lightList = append(s.lightList, light)
	s.bvh = nil
	s.lightSelector = nil
	return light
}

// AddQuadLight adds a rectangular area light spanning corner, corner+u,
// corner+u+v, corner+v. It emits from the side the winding normal points to.
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Color) *lights.QuadLight {
	light := lights.NewQuadLight(corner, u, v, emission)
	s.shapes = append(s.shapes, light)
	s.lightList = append(s.lightList, light)
	s.bvh = nil
	s.lightSelector = nil
	return light
}

// Lights returns the lights available for direct sampling.
func (s *Scene) Lights() []lights.Light {
	return s.lightList
}

// Preprocess builds the acceleration structures: a bounding volume
// hierarchy over the shapes and a power-weighted light selector. Call it
// once after scene construction, before rendering; the structures are
// read-only afterwards and safe to share across render workers.
func (s *Scene) Preprocess() {
	s.bvh = geometry.NewBVH(s.shapes)
	s.lightSelector = lights.NewSelector(s.lightList)
}

// SelectLight picks a light for direct lighting using a uniform random
// number u. Returns the light and its selection probability; nil when the
// scene has no lights. Without Preprocess the selection is uniform.
func (s *Scene) SelectLight(u float64) (lights.Light, float64) {
	if s.lightSelector != nil {
		return s.lightSelector.Pick(u)
	}
	if len(s.lightList) == 0 {
		return nil, 0.0
	}
	index := int(u * float64(len(s.lightList)))
	if index >= len(s.lightList) {
		index = len(s.lightList) - 1
	}
	return s.lightList[index], 1.0 / float64(len(s.lightList))
}

// Intersect finds the closest intersection along the ray. It returns false
// when the ray escapes the scene. Uses the hierarchy when Preprocess has
// built one, otherwise scans the shape list.
func (s *Scene) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	if s.bvh != nil {
		return s.bvh.Hit(ray, intersectionEpsilon, math.Inf(1))
	}

	var closest *material.HitRecord
	closestT := math.Inf(1)

	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, intersectionEpsilon, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// Background returns the radiance for a ray that leaves the scene, blending
// from BackgroundBottom at the horizon's floor to BackgroundTop at the zenith.
func (s *Scene) Background(ray core.Ray) core.Color {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.BackgroundBottom.Multiply(1.0 - t).Add(s.BackgroundTop.Multiply(t))
}
