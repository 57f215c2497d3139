package material

import (
	"math"
)

// Light is a diffuse emitter. It still scatters like a Lambertian surface.
var Light = Material{Albedo: 1, Emission: 0.99, Prob: 1 / math.Pi, Kind: KindLambertian}

// NewEmissive creates a light-emitting diffuse material with the given emission scale
func NewEmissive(emission float64) Material {
	m := Light
	m.Emission = emission
	return m
}
