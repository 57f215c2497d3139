package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices, counter-clockwise around the normal
	Color      core.Vec3         // Surface color
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
	degenerate bool              // Collinear vertices; never hit
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2, color core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Color:    color,
		Material: mat,
	}

	// Normal is the cross product of the two edges
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	lengthSquared := cross.LengthSquared()
	if lengthSquared == 0 || math.IsNaN(lengthSquared) || math.IsInf(lengthSquared, 0) {
		t.degenerate = true
		return t
	}
	t.normal = cross.Normalize()
	return t
}

// IsDegenerate reports whether the vertices are collinear or coincident
func (t *Triangle) IsDegenerate() bool {
	return t.degenerate
}

// Hit intersects the triangle's plane and then checks that the point lies on
// the inner side of all three edges
func (t *Triangle) Hit(ray core.Ray) (HitRecord, bool) {
	if t.degenerate {
		return HitRecord{}, false
	}

	denominator := ray.Direction.Dot(t.normal)
	if !(math.Abs(denominator) >= 1e-8) {
		return HitRecord{}, false
	}

	dist := t.V0.Subtract(ray.Origin).Dot(t.normal) / denominator
	if !(dist > 0) || math.IsInf(dist, 0) {
		return HitRecord{}, false
	}

	point := ray.At(dist)
	if !t.inside(point) {
		return HitRecord{}, false
	}

	return HitRecord{
		T:        dist,
		Point:    point,
		Material: t.Material,
		Color:    t.Color,
		Normal:   t.normal,
	}, true
}

// inside reports whether a point on the triangle's plane is within its edges
func (t *Triangle) inside(p core.Vec3) bool {
	edges := [3][2]core.Vec3{{t.V0, t.V1}, {t.V1, t.V2}, {t.V2, t.V0}}
	for _, e := range edges {
		if e[1].Subtract(e[0]).Cross(p.Subtract(e[0])).Dot(t.normal) < 0 {
			return false
		}
	}
	return true
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
