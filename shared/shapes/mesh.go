package shapes

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle mesh. The coordinate and index buffers are flat
// and fixed-length: they are allocated once at construction, sized from the
// vertex and triangle counts, and never grown afterwards. Vertices and Normals
// share a single backing array.
type Mesh struct {
	VertexCount   int
	TriangleCount int

	// Vertices holds 3*VertexCount values, x y z interleaved.
	Vertices []float64

	// Triangles holds 3*TriangleCount vertex indices, one triple per
	// triangle, winding as supplied. Every index must be < VertexCount.
	Triangles []uint32

	// Normals holds 3*TriangleCount values: one unit face normal per
	// triangle, filled in by ComputeNormals.
	Normals []float64
}

func (*Mesh) Kind() Kind { return MeshKind }

// NewMesh allocates a mesh for the given counts. The float buffers come from
// one arena allocation; the caller fills Vertices and Triangles and then
// calls ComputeNormals.
func NewMesh(vertexCount, triangleCount int) *Mesh {
	nv := 3 * vertexCount
	nt := 3 * triangleCount
	arena := make([]float64, nv+nt)
	return &Mesh{
		VertexCount:   vertexCount,
		TriangleCount: triangleCount,
		Vertices:      arena[:nv:nv],
		Triangles:     make([]uint32, nt),
		Normals:       arena[nv:],
	}
}

// Vertex returns vertex i as a vector.
func (m *Mesh) Vertex(i int) mgl64.Vec3 {
	i3 := 3 * i
	return mgl64.Vec3{m.Vertices[i3], m.Vertices[i3+1], m.Vertices[i3+2]}
}

// ComputeNormals fills Normals with one unit normal per triangle, computed
// from the winding of the triangle's vertices. Degenerate triangles get a
// zero normal.
func (m *Mesh) ComputeNormals() {
	for i := 0; i < m.TriangleCount; i++ {
		i3 := 3 * i
		a := m.Vertex(int(m.Triangles[i3]))
		b := m.Vertex(int(m.Triangles[i3+1]))
		c := m.Vertex(int(m.Triangles[i3+2]))
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		} else {
			n = mgl64.Vec3{}
		}
		m.Normals[i3] = n.X()
		m.Normals[i3+1] = n.Y()
		m.Normals[i3+2] = n.Z()
	}
}
