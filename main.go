package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/renderer"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// cliConfig holds the parsed command line
type cliConfig struct {
	SceneName  string
	Sampling   scene.SamplingConfig // Zero fields keep the scene defaults
	Options    renderer.RenderOptions
	OutputPath string
	MeshPath   string
	Texture    string
	Sequential bool
	List       bool
	Help       bool
}

func parseFlags(args []string, output io.Writer) (*cliConfig, *flag.FlagSet, error) {
	cfg := &cliConfig{}
	var seed uint
	fs := flag.NewFlagSet("path-tracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.SceneName, "scene", "default", "Scene to render (see -list)")
	fs.IntVar(&cfg.Sampling.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&cfg.Sampling.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&cfg.Sampling.SamplesPerPixel, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.Sampling.MaxDepth, "depth", 0, "Maximum path depth (0 = scene default)")
	fs.UintVar(&seed, "seed", 0, "Random seed (0 = scene default)")
	fs.IntVar(&cfg.Options.NumWorkers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&cfg.Options.TileSize, "tile", 64, "Tile size in pixels")
	fs.StringVar(&cfg.OutputPath, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.StringVar(&cfg.MeshPath, "mesh", "", "glTF/GLB file for the mesh scene (default: built-in octahedron)")
	fs.StringVar(&cfg.Texture, "texture", "", "Image to wrap around the default scene's textured sphere")
	fs.BoolVar(&cfg.Sequential, "sequential", false, "Render on one goroutine with a single random sequence")
	fs.BoolVar(&cfg.List, "list", false, "List available scenes")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if seed > uint(^uint32(0)) {
		return nil, fs, fmt.Errorf("seed %d does not fit in 32 bits", seed)
	}
	cfg.Sampling.Seed = uint32(seed)
	return cfg, fs, nil
}

// createScene builds the named scene and applies the command line overrides
func createScene(cfg *cliConfig) (*scene.Scene, error) {
	opts := scene.Options{MeshPath: cfg.MeshPath}
	if cfg.Texture != "" {
		texture, err := loaders.LoadImageTexture(cfg.Texture)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		opts.Texture = texture
	}

	s, err := scene.Create(cfg.SceneName, opts)
	if err != nil {
		return nil, err
	}

	s.SamplingConfig = s.SamplingConfig.Merge(cfg.Sampling)
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// outputPath returns the configured path or a timestamped one under output/
func outputPath(cfg *cliConfig, now time.Time) string {
	if cfg.OutputPath != "" {
		return cfg.OutputPath
	}
	name := strings.ToLower(strings.TrimSpace(cfg.SceneName))
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: path-tracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w)
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.ID, info.Description)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, fs, err := parseFlags(args, stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if cfg.Help {
		printUsage(stdout, fs)
		return nil
	}
	if cfg.List {
		printScenes(stdout)
		return nil
	}

	s, err := createScene(cfg)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	raytracer := renderer.NewPathTracer(s, cfg.Options, logger)

	var frame *renderer.Frame
	var stats renderer.RenderStats
	if cfg.Sequential {
		frame, stats, err = raytracer.RenderPass()
	} else {
		frame, stats, err = raytracer.Render()
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Samples per pixel: %.1f, %d pixels\n", stats.AverageSamples, stats.TotalPixels)

	filename := outputPath(cfg, time.Now())
	if err := loaders.SavePNG(filename, frame.Image()); err != nil {
		return fmt.Errorf("failed to save render: %w", err)
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
