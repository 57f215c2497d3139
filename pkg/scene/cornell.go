package scene

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Room dimensions for the box scene
const (
	roomHalfWidth = 1.5
	roomHeight    = 3.0
	roomDepth     = 3.0
)

// NewBoxScene creates a Cornell-style room open towards the camera, lit by a
// ceiling panel. It holds a box, a mirror sphere, a metal sphere and a small
// triangle pyramid.
func NewBoxScene() *Scene {
	s := NewScene(geometry.CameraConfig{
		Position: core.NewVec3(0, 1.5, -3.2),
		Looking:  core.NewVec3(0, 0, 1),
		GlobalUp: core.NewVec3(0, 1, 0),
		FOV:      math.Pi / 3,
	})

	white := core.NewVec3(0.73, 0.73, 0.73)
	red := core.NewVec3(0.65, 0.05, 0.05)
	green := core.NewVec3(0.12, 0.45, 0.15)
	w, h, d := roomHalfWidth, roomHeight, roomDepth

	// Walls face into the room
	floor := geometry.NewAxisRect(geometry.AxisY, -w, w, 0, d, 0, white, material.Lambert)
	ceiling := geometry.NewAxisRect(geometry.AxisY, -w, w, 0, d, h, white, material.Lambert).Flip()
	backWall := geometry.NewAxisRect(geometry.AxisZ, -w, w, 0, h, d, white, material.Lambert).Flip()
	leftWall := geometry.NewAxisRect(geometry.AxisX, 0, h, 0, d, -w, red, material.Lambert)
	rightWall := geometry.NewAxisRect(geometry.AxisX, 0, h, 0, d, w, green, material.Lambert).Flip()
	s.Add(floor, ceiling, backWall, leftWall, rightWall)

	// Ceiling light, slightly below the ceiling so it is found first
	lightPanel := geometry.NewAxisRect(geometry.AxisY, -0.5, 0.5, 1, 2, h-0.001, core.White(), material.NewEmissive(4)).Flip()
	s.Add(lightPanel)

	tallBox := geometry.NewAxisAlignedBox(core.NewVec3(-1.1, 0, 1.6), core.NewVec3(-0.3, 1.6, 2.4), white, material.Lambert)
	mirrorSphere := geometry.NewSphere(core.NewVec3(0.7, 0.5, 1.8), 0.5, material.Mirror, nil)
	metalSphere := geometry.NewSphere(core.NewVec3(-0.2, 0.35, 0.7), 0.35, material.Metal, material.NewSolidColor(core.NewVec3(0.9, 0.7, 0.3)))
	s.Add(tallBox, mirrorSphere, metalSphere)

	// Pyramid on the floor, outward-wound faces
	apex := core.NewVec3(0.8, 0.8, 0.6)
	base := [4]core.Vec3{
		core.NewVec3(0.5, 0, 0.3),
		core.NewVec3(1.1, 0, 0.3),
		core.NewVec3(1.1, 0, 0.9),
		core.NewVec3(0.5, 0, 0.9),
	}
	pyramidColor := core.NewVec3(0.3, 0.5, 0.9)
	for i := range base {
		next := base[(i+1)%len(base)]
		s.Add(geometry.NewTriangle(base[i], apex, next, pyramidColor, material.Lambert))
	}

	return s
}
