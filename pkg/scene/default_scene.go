package scene

import (
	"github.com/Aofusa/gemspt-go/pkg/core"
	"github.com/Aofusa/gemspt-go/pkg/geometry"
	"github.com/Aofusa/gemspt-go/pkg/material"
)

// NewDefaultScene builds an open-air scene showing each material type:
// a matte sphere, a glossy sphere and a glass sphere resting on a gray
// ground plane under a spherical light and a blue sky gradient.
func NewDefaultScene() *Scene {
	s := NewScene(
		core.NewVec3(0.5, 0.7, 1.0), // sky blue
		core.NewVec3(1.0, 1.0, 1.0), // white horizon
	)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	matte := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	glossy := material.NewPhong(core.NewVec3(0.6, 0.6, 0.2), 100.0)
	glass := material.NewGlass(core.NewVec3(0.99, 0.99, 0.99), 1.5)

	s.Add(
		// 20x20 ground plane centered at the origin, normal up
		geometry.NewQuad(
			core.NewVec3(-10, 0, -10),
			core.NewVec3(0, 0, 20),
			core.NewVec3(20, 0, 0),
			ground,
		),
		geometry.NewSphere(core.NewVec3(-2.5, 1, 0), 1.0, matte),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glossy),
		geometry.NewSphere(core.NewVec3(2.5, 1, 0), 1.0, glass),
	)

	s.AddSphereLight(core.NewVec3(0, 7, 2), 1.5, core.NewVec3(16, 16, 16))

	return s
}
