package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Position core.Vec3 // Eye position
	Looking  core.Vec3 // Viewing direction
	GlobalUp core.Vec3 // World up used to build the basis
	FOV      float64   // Field of view in radians
}

// Camera generates primary rays through a pinhole. The basis is fixed at
// construction.
type Camera struct {
	config  CameraConfig
	looking core.Vec3
	side    core.Vec3
	up      core.Vec3
	h       float64 // Focal distance for a unit half-height image plane
}

// NewCamera creates a camera from the configuration
func NewCamera(config CameraConfig) *Camera {
	looking := config.Looking.Normalize()
	side := config.GlobalUp.Cross(looking).Normalize()
	return &Camera{
		config:  config,
		looking: looking,
		side:    side,
		up:      looking.Cross(side),
		h:       1.0 / math.Tan(config.FOV/2),
	}
}

// Direction returns the normalized view direction through image-plane
// coordinates (u, v); v = 1 is the top row and u is scaled by the aspect ratio
func (c *Camera) Direction(u, v float64) core.Vec3 {
	return c.looking.Multiply(c.h).
		Add(c.side.Multiply(u)).
		Add(c.up.Multiply(v)).
		Normalize()
}

// GetRay generates a jittered ray through pixel (x, y) of a width×height image.
// It draws two samples, u jitter first. Width and height must be at least 2.
func (c *Camera) GetRay(x, y, width, height int, sampler core.Sampler) core.Ray {
	w, h := float64(width), float64(height)
	u := (2*float64(x)/(w-1) - 1) * w / h
	v := -2*float64(y)/(h-1) + 1

	u += (sampler.Get1D() - 0.5) / (h - 1) * 2
	v += (sampler.Get1D() - 0.5) / (h - 1) * 2

	return core.NewRay(c.config.Position, c.Direction(u, v))
}

// GetConfig returns the configuration the camera was built from
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}
