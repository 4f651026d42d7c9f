package scene

import (
	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/geometry"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// NewCornellScene builds a Cornell box: a 6x6x6 enclosure with a red left
// wall, a green right wall, white floor, ceiling and back wall, lit by a
// rectangular ceiling light. A glass sphere and a glossy sphere sit inside.
// The box is open toward +Z where the camera looks in, and the background
// is black so escaping rays contribute nothing.
func NewCornellScene() *Scene {
	s := NewScene(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 0),
	)

	white := material.NewLambertian(core.NewVec3(0.75, 0.75, 0.75))
	red := material.NewLambertian(core.NewVec3(0.75, 0.25, 0.25))
	green := material.NewLambertian(core.NewVec3(0.25, 0.75, 0.25))
	glass := material.NewGlass(core.NewVec3(0.99, 0.99, 0.99), 1.5)
	glossy := material.NewPhong(core.NewVec3(0.75, 0.75, 0.25), 50.0)

	// All wall normals point into the box.
	s.Add(
		// floor, normal up
		geometry.NewQuad(
			core.NewVec3(-3, 0, -3),
			core.NewVec3(0, 0, 6),
			core.NewVec3(6, 0, 0),
			white,
		),
		// ceiling, normal down
		geometry.NewQuad(
			core.NewVec3(-3, 6, -3),
			core.NewVec3(6, 0, 0),
			core.NewVec3(0, 0, 6),
			white,
		),
		// back wall, normal toward the camera
		geometry.NewQuad(
			core.NewVec3(-3, 0, -3),
			core.NewVec3(6, 0, 0),
			core.NewVec3(0, 6, 0),
			white,
		),
		// left wall, normal +X
		geometry.NewQuad(
			core.NewVec3(-3, 0, -3),
			core.NewVec3(0, 6, 0),
			core.NewVec3(0, 0, 6),
			red,
		),
		// right wall, normal -X
		geometry.NewQuad(
			core.NewVec3(3, 0, -3),
			core.NewVec3(0, 0, 6),
			core.NewVec3(0, 6, 0),
			green,
		),
		geometry.NewSphere(core.NewVec3(-1.3, 1.2, -0.8), 1.1, glass),
		geometry.NewSphere(core.NewVec3(1.4, 1.0, 0.6), 1.0, glossy),
	)

	// Light panel just below the ceiling, emitting downward.
	s.AddQuadLight(
		core.NewVec3(-1, 5.99, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(24, 24, 24),
	)

	return s
}
