package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64           // Distance along the ray
	Point    core.Vec3         // Point of intersection
	Material material.Material // Material at the hit point
	Color    core.Vec3         // Surface color at the hit point
	Normal   core.Vec3         // Outward unit surface normal
}

// Shape is anything a ray can be intersected with. A miss, including any
// degenerate configuration, is reported as false rather than an error.
type Shape interface {
	Hit(ray core.Ray) (HitRecord, bool)
}
