package geometry

import (
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleMesh is a collection of triangles sharing one color and material.
// Intersection tests every triangle in order.
type TriangleMesh struct {
	triangles []*Triangle
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Rotation *core.Vec3 // Optional rotation in radians around X, Y, Z (applied in that order)
	Center   *core.Vec3 // Optional center point for rotation
	Scale    float64    // Optional uniform scale applied before rotation (0 means 1)
	Offset   *core.Vec3 // Optional translation applied last
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Each group of 3 indices in faces forms a triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, color core.Vec3, mat material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	workingVertices := vertices
	if options != nil {
		rotation := mgl64.Ident3()
		if options.Rotation != nil {
			rotation = rotationMatrix(*options.Rotation)
		}
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			workingVertices[i] = options.transform(vertex, rotation)
		}
	}

	numTriangles := len(faces) / 3
	triangles := make([]*Triangle, 0, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(workingVertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, idx, len(workingVertices))
			}
		}

		tri := NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], color, mat)
		// Degenerate triangles have no normal; drop them
		if tri.IsDegenerate() {
			continue
		}
		triangles = append(triangles, tri)
	}

	return &TriangleMesh{triangles: triangles}, nil
}

// Hit returns the nearest triangle hit; equal distances keep the earlier triangle
func (tm *TriangleMesh) Hit(ray core.Ray) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	for _, tri := range tm.triangles {
		if hit, ok := tri.Hit(ray); ok && (!hitAnything || hit.T < closest.T) {
			closest = hit
			hitAnything = true
		}
	}
	return closest, hitAnything
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// transform applies scale, rotation about Center, then offset
func (o *TriangleMeshOptions) transform(vertex core.Vec3, rotation mgl64.Mat3) core.Vec3 {
	if o.Scale != 0 {
		vertex = vertex.Multiply(o.Scale)
	}
	if o.Rotation != nil {
		if o.Center != nil {
			vertex = vertex.Subtract(*o.Center)
		}
		vertex = applyMatrix(rotation, vertex)
		if o.Center != nil {
			vertex = vertex.Add(*o.Center)
		}
	}
	if o.Offset != nil {
		vertex = vertex.Add(*o.Offset)
	}
	return vertex
}

// rotationMatrix composes rotations around X, Y, Z (applied in that order)
func rotationMatrix(rotation core.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(rotation.Z).Mul3(mgl64.Rotate3DY(rotation.Y)).Mul3(mgl64.Rotate3DX(rotation.X))
}

func applyMatrix(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	p := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(p[0], p[1], p[2])
}
