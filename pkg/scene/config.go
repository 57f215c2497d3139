package scene

import (
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int    // Image width in pixels
	Height          int    // Image height in pixels
	SamplesPerPixel int    // Number of primary rays per pixel
	MaxDepth        int    // Maximum path length; exhausted paths contribute white
	Seed            uint32 // RNG seed
}

// DefaultSamplingConfig returns the standard 640x320 preview settings
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           640,
		Height:          320,
		SamplesPerPixel: 32,
		MaxDepth:        4,
		Seed:            core.DefaultSeed,
	}
}

// Merge returns base with every non-zero field of override applied
func (base SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Validate reports the first setting that cannot be rendered
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("image must be at least 2x2, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}
