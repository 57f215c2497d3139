package core

import (
	"image/color"
	"math"
)

// Display encoding constants
const (
	Brightness = 2.0 // Exposure multiplier applied before the roll-off curve
	Gamma      = 2.2
)

// White returns (1, 1, 1)
func White() Vec3 {
	return Vec3{X: 1, Y: 1, Z: 1}
}

// Black returns (0, 0, 0)
func Black() Vec3 {
	return Vec3{}
}

// Clamp restricts x to [0, 1]. NaN maps to 0.
func Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return max(0, min(1, x))
}

// Clamp returns a vector with every component clamped to [0, 1]
func (v Vec3) Clamp() Vec3 {
	return Vec3{X: Clamp(v.X), Y: Clamp(v.Y), Z: Clamp(v.Z)}
}

// Expose applies the exposure curve 1 - e^(-L*Brightness)
func Expose(linear float64) float64 {
	return 1 - math.Exp(-linear*Brightness)
}

// GammaEncode applies x^(1/Gamma)
func GammaEncode(x float64) float64 {
	return math.Pow(x, 1/Gamma)
}

// EncodeChannel maps one linear channel to its 8-bit display value
func EncodeChannel(linear float64) uint8 {
	return uint8(GammaEncode(Expose(linear)) * 255)
}

// ToRGBA clamps a linear radiance value and converts it to a display color.
// This is the only place tone mapping and gamma are applied.
func ToRGBA(c Vec3) color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: EncodeChannel(c.X),
		G: EncodeChannel(c.Y),
		B: EncodeChannel(c.Z),
		A: 255,
	}
}
