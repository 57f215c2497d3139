package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// GlassRatio is the refractive index ratio used when entering glass.
// Its reciprocal is used when leaving.
const GlassRatio = 0.7

// ScatterGlass chooses between reflection and refraction with one uniform
// draw against the Schlick reflectance. The side of the surface is given by
// the sign of the incidence cosine.
func ScatterGlass(normal, incoming core.Vec3, sampler core.Sampler) core.Vec3 {
	cosTheta := incoming.Dot(normal.Negate())
	r := sampler.Get1D()

	if cosTheta > 0 {
		// Entering from outside
		if r > Reflectance(cosTheta, GlassRatio) {
			return Refract(incoming, normal, GlassRatio)
		}
		return core.Reflect(incoming, normal)
	}

	// Leaving from inside: refract about the flipped normal unless the angle
	// is past the critical one
	if CanRefract(incoming, normal.Negate(), 1/GlassRatio) && r > Reflectance(-cosTheta*GlassRatio, GlassRatio) {
		return Refract(incoming, normal.Negate(), 1/GlassRatio)
	}
	return core.Reflect(incoming, normal)
}

// Refract bends the unit vector v through a surface with unit normal n facing
// against v, using ratio = n1/n2. Total internal reflection falls back to a
// mirror reflection.
func Refract(v, n core.Vec3, ratio float64) core.Vec3 {
	cosTheta := v.Dot(n)
	discriminant := 1 - ratio*ratio*(1-cosTheta*cosTheta)
	if discriminant <= 0 {
		return core.Reflect(v, n)
	}

	tangential := v.Subtract(n.Multiply(cosTheta)).Multiply(ratio)
	return tangential.Subtract(n.Multiply(math.Sqrt(discriminant)))
}

// CanRefract reports whether v can pass through the surface without total internal reflection
func CanRefract(v, n core.Vec3, ratio float64) bool {
	cosTheta := v.Dot(n)
	return 1-ratio*ratio*(1-cosTheta*cosTheta) > 0
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
