package integrator

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the linear radiance arriving along ray. The sampler
	// must be owned by the caller's goroutine.
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}
