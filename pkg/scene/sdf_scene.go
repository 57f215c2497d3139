package scene

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

// NewSDFScene creates a scene of sphere-traced surfaces: a metal torus, a
// rounded box and a glass blob of two blended spheres
func NewSDFScene() *Scene {
	s := NewScene(geometry.CameraConfig{
		Position: core.NewVec3(0, 1, 0),
		Looking:  core.NewVec3(0, -0.15, 1),
		GlobalUp: core.NewVec3(0, 1, 0),
		FOV:      math.Pi / 3,
	})

	ground := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.5, 0.5), material.Lambert)

	torus := geometry.NewSphereTraced(
		core.NewVec3(-1.6, -0.6, 7), 1,
		geometry.TorusField{Major: 0.8, Minor: 0.3},
		core.NewVec3(0.9, 0.6, 0.3), material.Metal,
	)
	roundedBox := geometry.NewSphereTraced(
		core.NewVec3(1.5, -0.4, 6.5), 1,
		geometry.BoxField{Half: core.NewVec3(0.45, 0.45, 0.45), Radius: 0.15},
		core.NewVec3(0.8, 0.2, 0.2), material.Lambert,
	)
	blob := geometry.NewSphereTraced(
		core.NewVec3(0, -0.4, 9), 1,
		geometry.DistanceFunc(blendedSpheres),
		core.White(), material.Glass,
	)
	light := geometry.NewSphere(core.NewVec3(0, 2.5, 7), 0.6, material.Light, nil)

	s.Add(ground, torus, roundedBox, blob, light)
	return s
}

// blendedSpheres is a smooth union of two offset unit-ish spheres
func blendedSpheres(p core.Vec3) float64 {
	const k = 0.3
	a := p.Subtract(core.NewVec3(-0.35, 0, 0)).Length() - 0.5
	b := p.Subtract(core.NewVec3(0.35, 0.1, 0)).Length() - 0.45
	h := core.Clamp(0.5 + 0.5*(b-a)/k)
	return b + (a-b)*h - k*h*(1-h)
}
