package renderer

import (
	"strings"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color core.Vec3
}

func (ci constantIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return ci.color
}

// panicIntegrator fails on every ray
type panicIntegrator struct{}

func (panicIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	panic("integrator failure")
}

// recordingLogger collects everything written to it
type recordingLogger struct {
	lines []string
}

func (rl *recordingLogger) Printf(format string, args ...interface{}) {
	rl.lines = append(rl.lines, format)
}

func smallScene(width, height, spp int) *scene.Scene {
	s := scene.NewDefaultScene(nil)
	s.SamplingConfig = s.SamplingConfig.Merge(scene.SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: spp,
		MaxDepth:        3,
	})
	return s
}

func TestRender_ConstantIntegrator(t *testing.T) {
	s := smallScene(10, 6, 3)
	want := core.NewVec3(0.25, 0.5, 0.75)

	rt := NewRaytracer(s, constantIntegrator{color: want}, RenderOptions{NumWorkers: 2, TileSize: 4}, nil)
	frame, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if got := frame.At(x, y); !got.Equals(want) {
				t.Fatalf("Pixel (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}

	if stats.TotalPixels != 60 {
		t.Errorf("Expected 60 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 180 {
		t.Errorf("Expected 180 samples, got %d", stats.TotalSamples)
	}
	if stats.AverageSamples != 3 {
		t.Errorf("Expected 3 average samples, got %f", stats.AverageSamples)
	}
	if stats.Tiles != 6 {
		t.Errorf("Expected 6 tiles for 10x6 with size 4, got %d", stats.Tiles)
	}
	if stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", stats.Workers)
	}
}

func TestRender_IndependentOfWorkersAndTiles(t *testing.T) {
	s := smallScene(24, 12, 2)
	integ := integrator.NewPathTracingIntegrator(s.SamplingConfig.MaxDepth)

	reference, _, err := NewRaytracer(s, integ, RenderOptions{NumWorkers: 1, TileSize: 64}, nil).Render()
	if err != nil {
		t.Fatalf("Reference render failed: %v", err)
	}

	tests := []struct {
		name    string
		options RenderOptions
	}{
		{"four workers", RenderOptions{NumWorkers: 4, TileSize: 64}},
		{"small tiles", RenderOptions{NumWorkers: 1, TileSize: 5}},
		{"many workers small tiles", RenderOptions{NumWorkers: 8, TileSize: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, _, err := NewRaytracer(s, integ, tt.options, nil).Render()
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			for i := range reference.Pixels {
				if frame.Pixels[i] != reference.Pixels[i] {
					t.Fatalf("Pixel %d differs: %v vs %v", i, frame.Pixels[i], reference.Pixels[i])
				}
			}
		})
	}
}

func TestRender_PanicBecomesError(t *testing.T) {
	s := smallScene(8, 8, 1)
	rt := NewRaytracer(s, panicIntegrator{}, RenderOptions{NumWorkers: 2, TileSize: 4}, nil)

	frame, _, err := rt.Render()
	if err == nil {
		t.Fatal("Expected an error from a panicking integrator")
	}
	if frame != nil {
		t.Error("Expected no frame on error")
	}
	if !strings.Contains(err.Error(), "integrator failure") {
		t.Errorf("Expected the panic value in the error, got %v", err)
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	s := smallScene(8, 8, 1)
	s.SamplingConfig.Width = 1

	rt := NewPathTracer(s, DefaultRenderOptions(), nil)
	if _, _, err := rt.Render(); err == nil {
		t.Error("Expected Render to reject width 1")
	}
	if _, _, err := rt.RenderPass(); err == nil {
		t.Error("Expected RenderPass to reject width 1")
	}
}

func TestRenderPass_Deterministic(t *testing.T) {
	s := smallScene(12, 6, 2)

	first, stats, err := NewPathTracer(s, DefaultRenderOptions(), nil).RenderPass()
	if err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}
	second, _, err := NewPathTracer(s, DefaultRenderOptions(), nil).RenderPass()
	if err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}

	for i := range first.Pixels {
		if first.Pixels[i] != second.Pixels[i] {
			t.Fatalf("Pixel %d differs between identical passes", i)
		}
	}
	if stats.TotalSamples != 12*6*2 {
		t.Errorf("Expected %d samples, got %d", 12*6*2, stats.TotalSamples)
	}
	if stats.Workers != 1 || stats.Tiles != 1 {
		t.Errorf("Expected a single worker and tile, got %d and %d", stats.Workers, stats.Tiles)
	}
}

func TestRenderPass_SeedChangesImage(t *testing.T) {
	s := smallScene(12, 6, 1)
	first, _, _ := NewPathTracer(s, DefaultRenderOptions(), nil).RenderPass()

	s.SamplingConfig.Seed = 99
	second, _, _ := NewPathTracer(s, DefaultRenderOptions(), nil).RenderPass()

	differs := false
	for i := range first.Pixels {
		if first.Pixels[i] != second.Pixels[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("Expected a different seed to change the image")
	}
}

func TestRender_Logs(t *testing.T) {
	s := smallScene(4, 4, 1)
	logger := &recordingLogger{}

	if _, _, err := NewRaytracer(s, constantIntegrator{}, RenderOptions{NumWorkers: 1, TileSize: 2}, logger).Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(logger.lines) != 2 {
		t.Fatalf("Expected start and completion log lines, got %d", len(logger.lines))
	}
	if !strings.HasPrefix(logger.lines[0], "Rendering") {
		t.Errorf("Unexpected first log line %q", logger.lines[0])
	}
}

func TestNewRaytracer_DefaultsOptions(t *testing.T) {
	rt := NewRaytracer(smallScene(4, 4, 1), constantIntegrator{}, RenderOptions{}, nil)
	if rt.options.NumWorkers <= 0 {
		t.Errorf("Expected a positive worker count, got %d", rt.options.NumWorkers)
	}
	if rt.options.TileSize != 64 {
		t.Errorf("Expected default tile size 64, got %d", rt.options.TileSize)
	}
}
