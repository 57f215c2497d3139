package loaders

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-path-tracer/pkg/core"
)

// quadDocument builds a document holding one indexed quad made of two triangles
func quadDocument() *gltf.Document {
	doc := gltf.NewDocument()
	positions := modeler.WritePosition(doc, [][3]float32{
		{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
	})
	indices := modeler.WriteIndices(doc, []uint16{0, 2, 1, 0, 3, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "quad",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: map[string]int{"POSITION": positions},
		}},
	}}
	return doc
}

func TestReadGLTFDocument_Indexed(t *testing.T) {
	data, err := ReadGLTFDocument(quadDocument())
	if err != nil {
		t.Fatalf("ReadGLTFDocument failed: %v", err)
	}

	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	expectedFaces := []int{0, 2, 1, 0, 3, 2}
	if len(data.Faces) != len(expectedFaces) {
		t.Fatalf("Expected %d indices, got %d", len(expectedFaces), len(data.Faces))
	}
	for i, f := range expectedFaces {
		if data.Faces[i] != f {
			t.Errorf("Face index %d: expected %d, got %d", i, f, data.Faces[i])
		}
	}
	if data.Vertices[2] != core.NewVec3(1, 0, 1) {
		t.Errorf("Expected vertex 2 at (1,0,1), got %v", data.Vertices[2])
	}
}

func TestReadGLTFDocument_MergesPrimitives(t *testing.T) {
	doc := quadDocument()
	positions := modeler.WritePosition(doc, [][3]float32{{0, 1, 0}, {1, 1, 0}, {0, 2, 0}})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "triangle",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{"POSITION": positions},
		}},
	})

	data, err := ReadGLTFDocument(doc)
	if err != nil {
		t.Fatalf("ReadGLTFDocument failed: %v", err)
	}
	if len(data.Vertices) != 7 {
		t.Errorf("Expected 7 vertices, got %d", len(data.Vertices))
	}
	if len(data.Faces) != 9 {
		t.Fatalf("Expected 9 indices, got %d", len(data.Faces))
	}
	// Non-indexed triangle is rebased after the quad's vertices
	for i, expected := range []int{4, 5, 6} {
		if data.Faces[6+i] != expected {
			t.Errorf("Expected rebased index %d, got %d", expected, data.Faces[6+i])
		}
	}
}

func TestReadGLTFDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  func() *gltf.Document
	}{
		{"no meshes", gltf.NewDocument},
		{"missing positions", func() *gltf.Document {
			doc := gltf.NewDocument()
			doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{{Attributes: map[string]int{}}}}}
			return doc
		}},
		{"only lines", func() *gltf.Document {
			doc := quadDocument()
			doc.Meshes[0].Primitives[0].Mode = gltf.PrimitiveLines
			return doc
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGLTFDocument(tt.doc()); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadGLTF_BinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(quadDocument(), path); err != nil {
		t.Fatalf("SaveBinary failed: %v", err)
	}

	data, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF failed: %v", err)
	}
	if len(data.Faces) != 6 {
		t.Errorf("Expected 2 triangles, got %d indices", len(data.Faces))
	}
}

func TestLoadGLTF_Missing(t *testing.T) {
	if _, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
