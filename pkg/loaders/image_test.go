package loaders

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

// writeTestPNG saves a 2x2 white/red/green/blue image and returns its path
func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "nested", "test.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	imageData, err := LoadImage(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}

	tests := []struct {
		name     string
		index    int
		expected core.Vec3
	}{
		{"top-left white", 0, core.NewVec3(1, 1, 1)},
		{"top-right red", 1, core.NewVec3(1, 0, 0)},
		{"bottom-left green", 2, core.NewVec3(0, 1, 0)},
		{"bottom-right blue", 3, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := imageData.Pixels[tt.index]
			if got.Subtract(tt.expected).Length() > 0.01 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nonexistent.png")},
		{"undecodable", garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadImage(tt.path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadImageTexture(t *testing.T) {
	texture, err := LoadImageTexture(writeTestPNG(t))
	if err != nil {
		t.Fatalf("LoadImageTexture failed: %v", err)
	}
	if texture.Width != 2 || texture.Height != 2 || len(texture.Pixels) != 4 {
		t.Fatalf("Unexpected texture size %dx%d (%d pixels)", texture.Width, texture.Height, len(texture.Pixels))
	}

	// Any direction must resolve to one of the image's pixels
	c := texture.Evaluate(core.NewVec3(0.3, -0.7, 0.2))
	if math.Abs(c.X+c.Y+c.Z) < 0.99 {
		t.Errorf("Expected a saturated image color, got %v", c)
	}
}
