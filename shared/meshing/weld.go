// Package meshing builds shapes.Mesh values from raw vertex streams, from
// imported scene graphs and from binary asset buffers.
package meshing

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/shapes"
)

// NewMeshFromTriangles builds a mesh from vertices plus an explicit triangle
// index list. The data is copied verbatim, no deduplication is performed and
// indices are not bounds-checked: the caller guarantees that every index is a
// valid vertex.
func NewMeshFromTriangles(vertices []mgl64.Vec3, triangles []uint32) *shapes.Mesh {
	mesh := shapes.NewMesh(len(vertices), len(triangles)/3)
	for i, v := range vertices {
		i3 := 3 * i
		mesh.Vertices[i3] = v.X()
		mesh.Vertices[i3+1] = v.Y()
		mesh.Vertices[i3+2] = v.Z()
	}
	copy(mesh.Triangles, triangles)
	mesh.ComputeNormals()
	return mesh
}

// NewMeshFromVertexSoup welds a flat, un-indexed vertex stream, where every
// three consecutive vertices form one triangle, into an indexed mesh.
// Coincident vertices are merged by exact coordinate equality; there is no
// epsilon tolerance, so near-duplicates that differ by rounding error stay
// separate vertices. Welded vertices keep their first-seen order in the
// output buffer.
//
// Returns nil if fewer than 3 vertices are supplied. A stream length that is
// not a multiple of 3 is reported but not fatal; the trailing vertices are
// dropped.
func NewMeshFromVertexSoup(source []mgl64.Vec3) *shapes.Mesh {
	if len(source) < 3 {
		return nil
	}
	if len(source)%3 != 0 {
		log.Printf("[Meshing] vertex count %d is not divisible by 3; constructed triangles may not make sense", len(source))
	}

	index := make(map[[3]float64]uint32, len(source))
	welded := make([][3]float64, 0, len(source))
	triangles := make([]uint32, 0, len(source))

	n := len(source) / 3
	for i := 0; i < 3*n; i++ {
		key := [3]float64{source[i].X(), source[i].Y(), source[i].Z()}
		idx, ok := index[key]
		if !ok {
			idx = uint32(len(welded))
			index[key] = idx
			welded = append(welded, key)
		}
		triangles = append(triangles, idx)
	}

	mesh := shapes.NewMesh(len(welded), n)
	for i, v := range welded {
		i3 := 3 * i
		mesh.Vertices[i3] = v[0]
		mesh.Vertices[i3+1] = v[1]
		mesh.Vertices[i3+2] = v[2]
	}
	copy(mesh.Triangles, triangles)
	mesh.ComputeNormals()
	return mesh
}
