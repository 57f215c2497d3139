package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// parallelEpsilon rejects rays nearly parallel to a plane
const parallelEpsilon = 1e-3

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal vector
	Color    core.Vec3         // Surface color
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal, color core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Color:    color,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is (nearly) parallel to plane
	if math.Abs(denominator) < parallelEpsilon {
		return HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return HitRecord{}, false
	}

	return HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
		Color:    p.Color,
		Normal:   p.Normal,
	}, true
}
