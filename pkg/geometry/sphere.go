package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	Texture  material.ColorSource // Evaluated at the hit point relative to Center
}

// NewSphere creates a new sphere. A nil texture means plain white.
func NewSphere(center core.Vec3, radius float64, mat material.Material, texture material.ColorSource) *Sphere {
	if texture == nil {
		texture = material.NewSolidColor(core.White())
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		Texture:  texture,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (HitRecord, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if root < 0 {
		// Origin is inside the sphere: use the far side
		root = (-b + sqrtD) / (2 * a)
		if root < 0 {
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	offset := point.Subtract(s.Center)

	return HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		Color:    s.Texture.Evaluate(offset),
		Normal:   offset.Divide(s.Radius),
	}, true
}
