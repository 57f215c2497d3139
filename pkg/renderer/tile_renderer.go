package renderer

import (
	"image"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// TileRenderer renders rectangular regions of the image with an integrator.
// It holds no mutable state and may be shared by any number of workers.
type TileRenderer struct {
	camera     *geometry.Camera
	world      geometry.Shape
	integrator integrator.Integrator
	config     scene.SamplingConfig
}

// NewTileRenderer creates a new tile renderer for the scene
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     geometry.NewCamera(s.CameraConfig),
		world:      s,
		integrator: integratorInst,
		config:     s.SamplingConfig,
	}
}

// RenderTileBounds renders every pixel within bounds into frame. Each pixel
// draws from its own generator seeded by its coordinates, so the result does
// not depend on which worker renders the tile or when.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame *Frame) RenderStats {
	stats := RenderStats{Tiles: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rng := core.NewRand(core.PixelSeed(tr.config.Seed, x, y))
			ps := tr.samplePixel(x, y, rng)
			frame.Set(x, y, ps.GetColor())

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.finalize()
	return stats
}

// samplePixel averages SamplesPerPixel jittered primary rays through (x, y)
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		ray := tr.camera.GetRay(x, y, tr.config.Width, tr.config.Height, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}
	return ps
}
