package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// maxBoxDistance bounds the slab interval; exits farther away are ignored
const maxBoxDistance = 1000.0

// Box represents an axis-aligned box between two corners
type Box struct {
	Min      core.Vec3         // Corner with the smallest coordinates
	Max      core.Vec3         // Corner with the largest coordinates
	Color    core.Vec3         // Surface color
	Material material.Material // Material for all faces
}

// NewAxisAlignedBox creates a box from two opposite corners in any order
func NewAxisAlignedBox(a, b, color core.Vec3, mat material.Material) *Box {
	return &Box{
		Min:      core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)),
		Max:      core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)),
		Color:    color,
		Material: mat,
	}
}

// Hit intersects the ray with the three slabs and keeps the overlap of their
// parametric intervals. A ray starting inside the box hits its exit face.
func (b *Box) Hit(ray core.Ray) (HitRecord, bool) {
	tNear, tFar := 0.0, maxBoxDistance
	nearAxis, farAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)
		lo, hi := b.Min.Component(axis), b.Max.Component(axis)

		// Parallel to this slab: inside it or never
		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return HitRecord{}, false
			}
			continue
		}

		invD := 1.0 / direction
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tNear {
			tNear, nearAxis = t0, axis
		}
		if t1 < tFar {
			tFar, farAxis = t1, axis
		}
		if tFar < tNear {
			return HitRecord{}, false
		}
	}

	// Entry face faces against the ray, exit face along it
	t, axis, sign := tNear, nearAxis, -1.0
	if tNear <= 0 {
		t, axis, sign = tFar, farAxis, 1.0
	}
	if axis < 0 || t <= 0 {
		return HitRecord{}, false
	}
	if ray.Direction.Component(axis) < 0 {
		sign = -sign
	}

	return HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: b.Material,
		Color:    b.Color,
		Normal:   axisVector(axis, sign),
	}, true
}

// axisVector returns the unit vector along axis scaled by sign
func axisVector(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}
