package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-path-tracer/pkg/material"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // Human-readable name
	Description string `json:"description"`
}

// Options carries the inputs some scenes need from outside
type Options struct {
	MeshPath string               // glTF/GLB file for the mesh scene; empty uses a built-in shape
	Texture  material.ColorSource // Texture for the default scene's textured sphere; nil uses a checker
}

type builder func(opts Options) (*Scene, error)

var builtInScenes = map[string]struct {
	info  SceneInfo
	build builder
}{
	"default": {
		SceneInfo{ID: "default", DisplayName: "Default Scene", Description: "Glass and textured spheres with a small yellow light over a green plane"},
		func(opts Options) (*Scene, error) { return NewDefaultScene(opts.Texture), nil },
	},
	"box": {
		SceneInfo{ID: "box", DisplayName: "Box Room", Description: "Cornell-style room with a box, mirror and metal spheres and a triangle pyramid"},
		func(Options) (*Scene, error) { return NewBoxScene(), nil },
	},
	"sdf": {
		SceneInfo{ID: "sdf", DisplayName: "Distance Fields", Description: "Sphere-traced torus, rounded box and glass blob"},
		func(Options) (*Scene, error) { return NewSDFScene(), nil },
	},
	"mesh": {
		SceneInfo{ID: "mesh", DisplayName: "Triangle Mesh", Description: "glTF mesh (or a built-in octahedron) with a light and a mirror sphere"},
		func(opts Options) (*Scene, error) { return NewMeshScene(opts.MeshPath) },
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene. Names are case-insensitive.
func Create(name string, opts ...Options) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		ids := make([]string, 0, len(builtInScenes))
		for _, info := range ListScenes() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(ids, ", "))
	}

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return entry.build(o)
}
