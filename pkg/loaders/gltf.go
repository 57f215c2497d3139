package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/df07/go-path-tracer/pkg/core"
)

// GLTFData contains the triangle geometry of every mesh in a glTF document,
// merged into one vertex list
type GLTFData struct {
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Triangle indices (3 per triangle)
	Skipped  int         // Primitives ignored because they are not triangle lists
}

// LoadGLTF opens a .gltf or .glb file and reads its triangle geometry.
// Node transforms, materials and textures are ignored.
func LoadGLTF(filename string) (*GLTFData, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file %s: %w", filename, err)
	}
	return ReadGLTFDocument(doc)
}

// ReadGLTFDocument extracts triangle geometry from an already decoded document
func ReadGLTFDocument(doc *gltf.Document) (*GLTFData, error) {
	data := &GLTFData{}

	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				data.Skipped++
				continue
			}
			if err := data.appendPrimitive(doc, prim); err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}

	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("glTF document contains no triangles")
	}
	return data, nil
}

// appendPrimitive adds one primitive's positions and indices, rebasing the
// indices onto the merged vertex list
func (d *GLTFData) appendPrimitive(doc *gltf.Document, prim *gltf.Primitive) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return fmt.Errorf("POSITION accessor %d out of range", posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	base := len(d.Vertices)
	for _, p := range positions {
		d.Vertices = append(d.Vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	// Non-indexed primitives list vertices in triangle order
	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			d.Faces = append(d.Faces, base+i, base+i+1, base+i+2)
		}
		return nil
	}

	if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
		return fmt.Errorf("index accessor %d out of range", *prim.Indices)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("indices: %w", err)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return fmt.Errorf("vertex index %d out of range [0,%d)", idx, len(positions))
		}
		d.Faces = append(d.Faces, base+int(idx))
	}
	return nil
}
