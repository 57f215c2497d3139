package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Ray marching limits
const (
	MarchEpsilon     = 1e-4 // Distance below which the surface counts as hit
	MarchMaxDistance = 100.0
	MarchMaxSteps    = 256
	normalDelta      = 1e-4 // Finite difference step for normals
)

// DistanceField is a signed distance function: negative inside, positive outside
type DistanceField interface {
	Distance(p core.Vec3) float64
}

// DistanceFunc adapts a function into a DistanceField
type DistanceFunc func(p core.Vec3) float64

// Distance invokes the wrapped function
func (f DistanceFunc) Distance(p core.Vec3) float64 {
	return f(p)
}

// SphereField is a sphere of the given radius around the origin
type SphereField struct {
	Radius float64
}

// Distance returns the signed distance to the sphere surface
func (s SphereField) Distance(p core.Vec3) float64 {
	return p.Length() - s.Radius
}

// TorusField is a ring in the XZ plane around the origin
type TorusField struct {
	Major float64 // Distance from the center to the tube center
	Minor float64 // Tube radius
}

// Distance returns the signed distance to the torus surface
func (t TorusField) Distance(p core.Vec3) float64 {
	ring := math.Hypot(p.X, p.Z) - t.Major
	return math.Hypot(ring, p.Y) - t.Minor
}

// BoxField is a box with half-extents Half, with edges rounded by Radius
type BoxField struct {
	Half   core.Vec3
	Radius float64
}

// Distance returns the signed distance to the box surface
func (b BoxField) Distance(p core.Vec3) float64 {
	q := core.NewVec3(
		math.Abs(p.X)-b.Half.X,
		math.Abs(p.Y)-b.Half.Y,
		math.Abs(p.Z)-b.Half.Z,
	)
	outside := core.NewVec3(max(q.X, 0), max(q.Y, 0), max(q.Z, 0)).Length()
	inside := min(max(q.X, q.Y, q.Z), 0)
	return outside + inside - b.Radius
}

// SphereTraced is an implicit surface found by marching along the ray.
// The field is evaluated in local space: (p - Center) / Scale.
type SphereTraced struct {
	Center   core.Vec3
	Scale    float64
	Field    DistanceField
	Color    core.Vec3
	Material material.Material
}

// NewSphereTraced creates an implicit surface
func NewSphereTraced(center core.Vec3, scale float64, field DistanceField, color core.Vec3, mat material.Material) *SphereTraced {
	return &SphereTraced{
		Center:   center,
		Scale:    scale,
		Field:    field,
		Color:    color,
		Material: mat,
	}
}

// distance evaluates the field in world units
func (s *SphereTraced) distance(p core.Vec3) float64 {
	return s.Field.Distance(p.Subtract(s.Center).Divide(s.Scale)) * s.Scale
}

// Hit steps along the ray by the distance to the surface. The ray direction
// must be unit length for the steps to be safe. Running out of distance or
// steps is a miss.
func (s *SphereTraced) Hit(ray core.Ray) (HitRecord, bool) {
	t := 0.0
	for step := 0; step < MarchMaxSteps; step++ {
		p := ray.At(t)
		// Absolute distance lets rays refracted into the surface march back out
		d := math.Abs(s.distance(p))
		if d < MarchEpsilon && t > 0 {
			return HitRecord{
				T:        t,
				Point:    p,
				Material: s.Material,
				Color:    s.Color,
				Normal:   s.normal(p),
			}, true
		}

		t += max(d, MarchEpsilon)
		if t > MarchMaxDistance {
			return HitRecord{}, false
		}
	}
	return HitRecord{}, false
}

// normal estimates the field gradient with central differences
func (s *SphereTraced) normal(p core.Vec3) core.Vec3 {
	dx := core.NewVec3(normalDelta, 0, 0)
	dy := core.NewVec3(0, normalDelta, 0)
	dz := core.NewVec3(0, 0, normalDelta)
	return core.NewVec3(
		s.distance(p.Add(dx))-s.distance(p.Subtract(dx)),
		s.distance(p.Add(dy))-s.distance(p.Subtract(dy)),
		s.distance(p.Add(dz))-s.distance(p.Subtract(dz)),
	).Normalize()
}
