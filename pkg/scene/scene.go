package scene

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes         []geometry.Shape      // Objects in the scene, tested in order
	CameraConfig   geometry.CameraConfig // Camera placement
	SamplingConfig SamplingConfig        // Image size and sampling parameters
}

// NewScene creates an empty scene with the default sampling configuration
func NewScene(camera geometry.CameraConfig) *Scene {
	return &Scene{
		Shapes:         make([]geometry.Shape, 0),
		CameraConfig:   camera,
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the nearest hit over all shapes. On equal distances the shape
// added first wins; hits at a non-finite distance are ignored. A Scene is
// itself a Shape.
func (s *Scene) Hit(ray core.Ray) (geometry.HitRecord, bool) {
	var closest geometry.HitRecord
	hitAnything := false

	for _, shape := range s.Shapes {
		hit, ok := shape.Hit(ray)
		if !ok || math.IsNaN(hit.T) || math.IsInf(hit.T, 0) {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling complex objects
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.TriangleMesh:
		return obj.GetTriangleCount()
	case *Scene:
		return obj.GetPrimitiveCount()
	default:
		return 1
	}
}
