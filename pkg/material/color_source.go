package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// ColorSource provides spatially-varying colors for shapes.
// Evaluate receives the hit point relative to the shape's center.
type ColorSource interface {
	Evaluate(offset core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(offset core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a procedural pattern over spherical angles. Cells where both
// angle fractions round up take Color1, the rest Color2.
type Checker struct {
	Color1, Color2 core.Vec3
	Frequency      float64 // Cells per radian
}

// NewCheckerTexture creates a white-on-black checker with 3 cells per radian
func NewCheckerTexture() *Checker {
	return &Checker{Color1: core.White(), Color2: core.Black(), Frequency: 3}
}

// Evaluate returns the checker color for the direction of offset
func (c *Checker) Evaluate(offset core.Vec3) core.Vec3 {
	theta, phi := SphericalAngles(offset)
	a := math.Round(math.Abs(math.Mod(c.Frequency*theta, 1)))
	b := math.Round(math.Abs(math.Mod(c.Frequency*phi, 1)))
	mask := a * b
	return c.Color1.Multiply(mask).Add(c.Color2.Multiply(1 - mask))
}

// SphericalAngles returns the polar angle from +Z in [0, π] and the azimuth
// atan2(x, y) in (-π, π]
func SphericalAngles(v core.Vec3) (theta, phi float64) {
	return math.Acos(v.Z / v.Length()), math.Atan2(v.X, v.Y)
}
