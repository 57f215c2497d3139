package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// metalDiffuseWeight is the share of diffuse lobe mixed into a metal reflection
const metalDiffuseWeight = 0.4

// NewMetal creates a glossy metal material with the given albedo
func NewMetal(albedo float64) Material {
	m := Metal
	m.Albedo = albedo
	return m
}

// ScatterMirror reflects the incoming direction about the normal
func ScatterMirror(normal, incoming core.Vec3) core.Vec3 {
	return core.Reflect(incoming, normal)
}

// ScatterMetal blends a mirror reflection with a diffuse sample and renormalizes
func ScatterMetal(normal, incoming core.Vec3, sampler core.Sampler) core.Vec3 {
	reflected := ScatterMirror(normal, incoming)
	diffuse := ScatterLambertian(normal, sampler)
	return reflected.Add(diffuse.Multiply(metalDiffuseWeight)).Normalize()
}
