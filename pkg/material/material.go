package material

import (
	"fmt"
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// ScatterKind selects the scattering function of a material
type ScatterKind int

const (
	KindLambertian ScatterKind = iota // Diffuse hemisphere sample
	KindMirror                        // Perfect specular reflection
	KindMetal                         // Mirror blended with a diffuse lobe
	KindGlass                         // Fresnel-weighted reflection or refraction
)

// String returns the kind name
func (k ScatterKind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMirror:
		return "mirror"
	case KindMetal:
		return "metal"
	case KindGlass:
		return "glass"
	default:
		return fmt.Sprintf("ScatterKind(%d)", int(k))
	}
}

// Material describes how a surface emits and scatters light.
// It is a plain value: copy it freely, never mutate a shared one.
type Material struct {
	Albedo      float64     // Fraction of incoming radiance reflected
	Emission    float64     // Emitted radiance scale, multiplied by the surface color
	Prob        float64     // Sampling probability density used to normalize the estimator
	CosWeighted bool        // Weight albedo by the incidence cosine (sample is not cosine-weighted)
	Kind        ScatterKind // Scattering function
}

// Preset materials
var (
	Lambert = Material{Albedo: 0.9, Prob: 1 / math.Pi, Kind: KindLambertian}
	Mirror  = Material{Albedo: 1, Prob: 1 / math.Pi, Kind: KindMirror}
	Glass   = Material{Albedo: 1, Prob: 1 / math.Pi, Kind: KindGlass}
	Metal   = Material{Albedo: 0.9, Prob: 1 / math.Pi, CosWeighted: true, Kind: KindMetal}
)

// Scatter samples an outgoing direction for a ray travelling along incoming
// that hit a surface with the given outward unit normal. Only stochastic kinds
// draw from the sampler.
func (m Material) Scatter(normal, incoming core.Vec3, sampler core.Sampler) core.Vec3 {
	switch m.Kind {
	case KindMirror:
		return ScatterMirror(normal, incoming)
	case KindMetal:
		return ScatterMetal(normal, incoming, sampler)
	case KindGlass:
		return ScatterGlass(normal, incoming, sampler)
	default:
		return ScatterLambertian(normal, sampler)
	}
}

// AlbedoTerm returns the albedo applied to reflected radiance, weighted by
// the clamped incidence cosine when the material requires it.
func (m Material) AlbedoTerm(normal, incoming core.Vec3) float64 {
	if m.CosWeighted {
		return m.Albedo * core.Clamp(incoming.Dot(normal.Negate()))
	}
	return m.Albedo
}

// Normalization returns the estimator scale 1/(π·Prob)
func (m Material) Normalization() float64 {
	return 1 / (math.Pi * m.Prob)
}

// IsEmissive reports whether the material emits light
func (m Material) IsEmissive() bool {
	return m.Emission > 0
}
