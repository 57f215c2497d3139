package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Axis names a coordinate axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// planeAxes returns the two axes spanning the plane perpendicular to a
func (a Axis) planeAxes() (int, int) {
	switch a {
	case AxisX:
		return 1, 2
	case AxisY:
		return 0, 2
	default:
		return 0, 1
	}
}

// AxisRect is a rectangle lying in the plane Axis = K. U and V bound the two
// remaining coordinates in axis order, so for AxisY U is X and V is Z.
type AxisRect struct {
	Axis     Axis
	U0, U1   float64
	V0, V1   float64
	K        float64
	Flipped  bool // Normal points along -Axis instead of +Axis
	Color    core.Vec3
	Material material.Material
}

// NewAxisRect creates an axis-aligned rectangle with its normal along +Axis
func NewAxisRect(axis Axis, u0, u1, v0, v1, k float64, color core.Vec3, mat material.Material) *AxisRect {
	return &AxisRect{
		Axis:     axis,
		U0:       min(u0, u1),
		U1:       max(u0, u1),
		V0:       min(v0, v1),
		V1:       max(v0, v1),
		K:        k,
		Color:    color,
		Material: mat,
	}
}

// Flip turns the normal to point along -Axis and returns the rectangle
func (r *AxisRect) Flip() *AxisRect {
	r.Flipped = !r.Flipped
	return r
}

// Hit tests if a ray intersects with the rectangle
func (r *AxisRect) Hit(ray core.Ray) (HitRecord, bool) {
	axis := int(r.Axis)
	direction := ray.Direction.Component(axis)
	if math.Abs(direction) < 1e-8 {
		return HitRecord{}, false
	}

	t := (r.K - ray.Origin.Component(axis)) / direction
	if t <= 0 {
		return HitRecord{}, false
	}

	point := ray.At(t)
	ua, va := r.Axis.planeAxes()
	u, v := point.Component(ua), point.Component(va)
	if u < r.U0 || u > r.U1 || v < r.V0 || v > r.V1 {
		return HitRecord{}, false
	}

	sign := 1.0
	if r.Flipped {
		sign = -1
	}
	return HitRecord{
		T:        t,
		Point:    point,
		Material: r.Material,
		Color:    r.Color,
		Normal:   axisVector(axis, sign),
	}, true
}
