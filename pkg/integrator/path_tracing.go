package integrator

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// SurfaceOffset is how far a continuation ray starts from the surface it
// left, on the side it travels into
const SurfaceOffset = 0.01

// Sky model
const (
	sunBias       = 0.03
	sunSharpness  = 300.0
	skyExponent   = 1.5
	skyBrightness = 0.4
)

var (
	sunDirection = core.NewVec3(-1, 1, -1).Normalize()
	skyBlue      = core.NewVec3(0.45, 0.68, 0.87)
)

// PathTracingIntegrator implements unidirectional path tracing with a single
// sampled continuation per hit and no light sampling
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a path tracer that follows paths for at
// most maxDepth segments
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// RayColor computes the color for a single ray using the configured depth
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, pt.maxDepth, sampler)
}

// Trace estimates radiance along ray with depth segments remaining.
// An exhausted path contributes white.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.White()
	}

	hit, isHit := world.Hit(ray)
	if !isHit {
		return Background(ray.Direction)
	}

	mat := hit.Material
	scattered := mat.Scatter(hit.Normal, ray.Direction, sampler)

	// Start on the side of the surface the new ray heads into
	side := 1.0
	if scattered.Dot(hit.Normal) < 0 {
		side = -1.0
	}
	origin := hit.Point.Add(hit.Normal.Multiply(SurfaceOffset * side))
	incoming := pt.Trace(core.NewRay(origin, scattered), world, depth-1, sampler)

	emitted := hit.Color.Multiply(mat.Emission)
	reflected := hit.Color.MultiplyVec(incoming).Multiply(mat.AlbedoTerm(hit.Normal, ray.Direction))
	return emitted.Add(reflected).Multiply(mat.Normalization())
}

// Background returns the sky radiance for a unit direction: a sharp sun disc
// plus a blue-to-white gradient that brightens towards the zenith
func Background(direction core.Vec3) core.Vec3 {
	sun := math.Pow(core.Clamp(sunDirection.Dot(direction)+sunBias), sunSharpness)
	height := math.Pow(max(0, (1+direction.Y)/2), skyExponent)
	sky := skyBlue.Lerp(core.White(), height).Multiply(skyBrightness)
	return core.White().Multiply(sun).Add(sky)
}
