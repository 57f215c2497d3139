package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/scene"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

// countingSampler wraps a Rand and counts draws
type countingSampler struct {
	rng   *core.Rand
	calls int
}

func (c *countingSampler) Get1D() float64 {
	c.calls++
	return c.rng.Get1D()
}

func newWorld(shapes ...geometry.Shape) *scene.Scene {
	s := scene.NewScene(geometry.CameraConfig{})
	s.Add(shapes...)
	return s
}

func TestPathTracing_DepthZeroIsWhite(t *testing.T) {
	world := newWorld(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.Lambert, nil))
	sampler := &countingSampler{rng: core.NewRand(core.DefaultSeed)}

	color := NewPathTracingIntegrator(0).RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), world, sampler)
	if color != core.White() {
		t.Errorf("Expected white for an exhausted path, got %v", color)
	}
	if sampler.calls != 0 {
		t.Errorf("Expected no draws, got %d", sampler.calls)
	}
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	world := newWorld()
	directions := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 1).Normalize(),
	}

	pt := NewPathTracingIntegrator(4)
	for _, d := range directions {
		got := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), d), world, core.NewRand(1))
		if got != Background(d) {
			t.Errorf("Direction %v: expected background %v, got %v", d, Background(d), got)
		}
	}
}

func TestBackground(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
		tolerance float64
	}{
		// Sun term is ~1e-65 here
		{"zenith", core.NewVec3(0, 1, 0), core.NewVec3(0.4, 0.4, 0.4), 1e-9},
		{"nadir", core.NewVec3(0, -1, 0), core.NewVec3(0.45, 0.68, 0.87).Multiply(0.4), 1e-12},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.45, 0.68, 0.87).Lerp(core.White(), math.Pow(0.5, 1.5)).Multiply(0.4), 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Background(tt.direction)
			if !vecNear(got, tt.expected, tt.tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBackground_Sun(t *testing.T) {
	sun := Background(sunDirection)
	if sun.X < 1 || sun.Y < 1 || sun.Z < 1 {
		t.Errorf("Expected the sun to add full white, got %v", sun)
	}

	// A few degrees away the sun has faded
	off := sunDirection.Add(core.NewVec3(0.3, 0, 0)).Normalize()
	if Background(off).X > 1 {
		t.Errorf("Expected the sun disc to be narrow, got %v", Background(off))
	}
}

func TestPathTracing_EmissiveSphere(t *testing.T) {
	// One segment: the light sphere's emission plus its albedo times the
	// exhausted path's white
	color := core.NewVec3(1, 0.8, 0)
	world := newWorld(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.Light, material.NewSolidColor(color)))
	sampler := &countingSampler{rng: core.NewRand(core.DefaultSeed)}

	got := NewPathTracingIntegrator(1).RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), world, sampler)
	expected := color.Multiply(material.Light.Emission + material.Light.Albedo)
	if !vecNear(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if sampler.calls != 2 {
		t.Errorf("Expected two draws for the diffuse bounce, got %d", sampler.calls)
	}
}

func TestPathTracing_MirrorReflectsSky(t *testing.T) {
	world := newWorld(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.White(), material.Mirror))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 1).Normalize())

	got := NewPathTracingIntegrator(2).RayColor(ray, world, core.NewRand(core.DefaultSeed))
	expected := Background(core.NewVec3(0, 1, 1).Normalize())
	if !vecNear(got, expected, 1e-9) {
		t.Errorf("Expected reflected sky %v, got %v", expected, got)
	}
}

func TestPathTracing_GlassSphereTransmits(t *testing.T) {
	// A glass sphere with white color is energy-neutral: whatever path is
	// taken, a ray that eventually escapes returns a sky value
	world := newWorld(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.Glass, nil))
	pt := NewPathTracingIntegrator(16)

	rng := core.NewRand(core.DefaultSeed)
	for i := 0; i < 64; i++ {
		got := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), world, rng)
		for _, c := range []float64{got.X, got.Y, got.Z} {
			if math.IsNaN(c) || c < 0 || c > 2.5 {
				t.Fatalf("Sample %d: unexpected radiance %v", i, got)
			}
		}
	}
}

func TestPathTracing_Deterministic(t *testing.T) {
	world, err := scene.Create("default")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	pt := NewPathTracingIntegrator(4)
	ray := core.NewRay(world.CameraConfig.Position, core.NewVec3(0.1, -0.1, 1).Normalize())

	a := pt.RayColor(ray, world, core.NewRand(99))
	b := pt.RayColor(ray, world, core.NewRand(99))
	if a != b {
		t.Errorf("Expected identical results for identical seeds, got %v and %v", a, b)
	}
}

func TestPathTracing_OffsetSide(t *testing.T) {
	// A lambertian floor lit only by sky: every continuation leaves upwards,
	// so the result is bounded by albedo times the brightest sky value
	world := newWorld(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.White(), material.Lambert))
	pt := NewPathTracingIntegrator(2)
	rng := core.NewRand(7)

	for i := 0; i < 100; i++ {
		got := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), world, rng)
		if got.X <= 0 || got.X > material.Lambert.Albedo*1.5 {
			t.Fatalf("Sample %d: radiance %v outside expected range", i, got)
		}
	}
}
