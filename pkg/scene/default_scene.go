package scene

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

// NewDefaultScene creates the demo scene: a glass sphere, a textured sphere and
// a small yellow light over a green ground plane. A nil texture gives the
// textured sphere a checker pattern.
func NewDefaultScene(texture material.ColorSource) *Scene {
	s := NewScene(geometry.CameraConfig{
		Position: core.NewVec3(0, 0.2, 0),
		Looking:  core.NewVec3(0, -0.051, 1),
		GlobalUp: core.NewVec3(0, 1, 0),
		FOV:      math.Pi / 3,
	})

	if texture == nil {
		texture = material.NewCheckerTexture()
	}

	glassSphere := geometry.NewSphere(core.NewVec3(1.5, 0, 6), 1, material.Glass, material.NewSolidColor(core.White()))
	ground := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.2, 0.4, 0.2), material.Lambert)
	texturedSphere := geometry.NewSphere(core.NewVec3(1.6, -0.3, 9.5), 0.7, material.Lambert, texture)
	lightSphere := geometry.NewSphere(core.NewVec3(-2, -0.5, 6.5), 0.5, material.Light, material.NewSolidColor(core.NewVec3(1, 0.8, 0)))

	s.Add(glassSphere, ground, texturedSphere, lightSphere)
	return s
}
