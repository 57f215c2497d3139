package material

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// ImageTexture wraps an image around a sphere: the polar angle selects the
// column and the azimuth selects the row.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture in the direction of offset using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(offset core.Vec3) core.Vec3 {
	theta, phi := SphericalAngles(offset)
	if phi < 0 {
		phi += 2 * math.Pi
	}

	x := int(math.Round(theta / math.Pi * float64(t.Width)))
	y := int(math.Round(phi / (2 * math.Pi) * float64(t.Height)))

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
