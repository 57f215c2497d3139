package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// RenderOptions controls how the image is split across goroutines
type RenderOptions struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	TileSize   int // Size of each square tile in pixels
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NumWorkers: runtime.NumCPU(),
		TileSize:   64,
	}
}

// Raytracer renders a scene into a Frame
type Raytracer struct {
	scene        *scene.Scene
	config       scene.SamplingConfig
	options      RenderOptions
	tileRenderer *TileRenderer
	logger       core.Logger
}

// NewRaytracer creates a raytracer for the scene using its sampling
// configuration. A nil logger discards output.
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, options RenderOptions, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger
	}
	defaults := DefaultRenderOptions()
	if options.NumWorkers <= 0 {
		options.NumWorkers = defaults.NumWorkers
	}
	if options.TileSize <= 0 {
		options.TileSize = defaults.TileSize
	}

	return &Raytracer{
		scene:        s,
		config:       s.SamplingConfig,
		options:      options,
		tileRenderer: NewTileRenderer(s, integratorInst),
		logger:       logger,
	}
}

// NewPathTracer creates a raytracer using path tracing to the scene's max depth
func NewPathTracer(s *scene.Scene, options RenderOptions, logger core.Logger) *Raytracer {
	return NewRaytracer(s, integrator.NewPathTracingIntegrator(s.SamplingConfig.MaxDepth), options, logger)
}

// Render renders the whole image in parallel tiles. The result is identical
// for any worker count or tile size.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid sampling config: %w", err)
	}

	startTime := time.Now()
	frame := NewFrame(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.options.TileSize)

	workerPool := NewWorkerPool(rt.tileRenderer, len(tiles), rt.options.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %d primitives, %d samples/pixel, depth %d (%d tiles, %d workers)...\n",
		rt.config.Width, rt.config.Height, rt.scene.GetPrimitiveCount(), rt.config.SamplesPerPixel, rt.config.MaxDepth,
		len(tiles), workerPool.GetNumWorkers())

	workerPool.Start()
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: frame})
	}

	stats := RenderStats{Workers: workerPool.GetNumWorkers()}
	var firstErr error
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		stats.merge(result.Stats)
	}
	workerPool.Stop()

	if firstErr != nil {
		return nil, RenderStats{}, firstErr
	}

	stats.finalize()
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return frame, stats, nil
}

// RenderPass renders the whole image on the calling goroutine, row by row
// from the top-left pixel, drawing every sample from one generator seeded
// with the configured seed
func (rt *Raytracer) RenderPass() (*Frame, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid sampling config: %w", err)
	}

	startTime := time.Now()
	rt.logger.Printf("Rendering %dx%d, %d primitives, %d samples/pixel, depth %d (sequential)...\n",
		rt.config.Width, rt.config.Height, rt.scene.GetPrimitiveCount(), rt.config.SamplesPerPixel, rt.config.MaxDepth)

	frame := NewFrame(rt.config.Width, rt.config.Height)
	rng := core.NewRand(rt.config.Seed)
	stats := RenderStats{Tiles: 1, Workers: 1}

	for y := 0; y < rt.config.Height; y++ {
		for x := 0; x < rt.config.Width; x++ {
			ps := rt.tileRenderer.samplePixel(x, y, rng)
			frame.Set(x, y, ps.GetColor())
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.finalize()
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return frame, stats, nil
}
