package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/material"
)

// NewMeshScene creates a scene showcasing triangle mesh geometry. With a path
// it loads the glTF/GLB file there, scaled to fit a unit-radius bound;
// without one it uses a built-in octahedron.
func NewMeshScene(path string) (*Scene, error) {
	s := NewScene(geometry.CameraConfig{
		Position: core.NewVec3(0, 1, 0),
		Looking:  core.NewVec3(0, -0.1, 1),
		GlobalUp: core.NewVec3(0, 1, 0),
		FOV:      math.Pi / 3,
	})

	vertices, faces := octahedron()
	if path != "" {
		data, err := loaders.LoadGLTF(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load mesh: %w", err)
		}
		vertices, faces = data.Vertices, data.Faces
	}

	center, radius := boundingSphere(vertices)
	offset := core.NewVec3(0, 0, 6).Subtract(center.Multiply(1 / radius))
	rotation := core.NewVec3(0, math.Pi/6, 0)
	pivot := center.Multiply(1 / radius)
	mesh, err := geometry.NewTriangleMesh(vertices, faces, core.NewVec3(0.8, 0.8, 0.85), material.Lambert, &geometry.TriangleMeshOptions{
		Scale:    1 / radius,
		Rotation: &rotation,
		Center:   &pivot,
		Offset:   &offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh: %w", err)
	}

	ground := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.2, 0.4, 0.2), material.Lambert)
	light := geometry.NewSphere(core.NewVec3(-2, 1.5, 5), 0.5, material.Light, nil)
	mirror := geometry.NewSphere(core.NewVec3(2, -0.4, 7), 0.6, material.Mirror, nil)

	s.Add(ground, mesh, light, mirror)
	return s, nil
}

// octahedron returns a unit octahedron with outward-wound faces
func octahedron() ([]core.Vec3, []int) {
	vertices := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	faces := []int{
		0, 2, 4, 4, 2, 1, 1, 2, 5, 5, 2, 0,
		0, 4, 3, 4, 1, 3, 1, 5, 3, 5, 0, 3,
	}
	return vertices, faces
}

// boundingSphere returns the center of the bounding box and the largest
// distance from it to any vertex (1 for an empty or single-point set)
func boundingSphere(vertices []core.Vec3) (core.Vec3, float64) {
	if len(vertices) == 0 {
		return core.Vec3{}, 1
	}
	lo, hi := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo = core.NewVec3(min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z))
		hi = core.NewVec3(max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z))
	}
	center := lo.Add(hi).Multiply(0.5)

	radius := 0.0
	for _, v := range vertices {
		radius = max(radius, v.Subtract(center).Length())
	}
	if radius == 0 {
		radius = 1
	}
	return center, radius
}
