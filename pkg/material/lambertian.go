package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// NewLambertian creates a diffuse material with the given albedo
func NewLambertian(albedo float64) Material {
	m := Lambert
	m.Albedo = albedo
	return m
}

// ScatterLambertian samples a direction in the hemisphere around the unit
// normal. The incoming direction does not matter for a diffuse surface.
func ScatterLambertian(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	azimuth := sampler.Get1D() * 2 * math.Pi
	y := sampler.Get1D() // cosine of the elevation
	sinElevation := math.Sqrt(1 - y*y)
	local := core.NewVec3(sinElevation*math.Cos(azimuth), y, sinElevation*math.Sin(azimuth))

	// Pick the tangent from the larger of |n.x|, |n.y| so the frame never degenerates
	var tangent core.Vec3
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		tangent = core.NewVec3(normal.Z, 0, -normal.X).Normalize()
	} else {
		tangent = core.NewVec3(0, -normal.Z, normal.Y).Normalize()
	}
	bitangent := normal.Cross(tangent)

	// Transform to world space
	return bitangent.Multiply(local.X).
		Add(normal.Multiply(local.Y)).
		Add(tangent.Multiply(local.Z))
}
