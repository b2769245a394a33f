package meshing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewMeshFromAssetTwoNodes(t *testing.T) {
	rootMesh := &MeshData{
		Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][]uint32{{0, 1, 2}},
	}
	childMesh := &MeshData{
		Vertices: []mgl64.Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}},
		Faces:    [][]uint32{{0, 1, 2}},
	}
	scene := &Scene{
		Root: &Node{
			Transform: mgl64.Translate3D(10, 0, 0),
			Meshes:    []int{0},
			Children: []*Node{
				{Transform: mgl64.Ident4(), Meshes: []int{1}},
			},
		},
		Meshes: []*MeshData{rootMesh, childMesh},
	}

	mesh := NewMeshFromAsset(scene, mgl64.Vec3{2, 1, 1}, "two-nodes")
	if mesh == nil {
		t.Fatal("NewMeshFromAsset returned nil")
	}
	if mesh.VertexCount != 6 {
		t.Errorf("VertexCount = %d, want 6", mesh.VertexCount)
	}
	if mesh.TriangleCount != 2 {
		t.Errorf("TriangleCount = %d, want 2", mesh.TriangleCount)
	}

	// Child triangle indices are offset by the root mesh's vertex count.
	want := []uint32{0, 1, 2, 3, 4, 5}
	for i, w := range want {
		if mesh.Triangles[i] != w {
			t.Errorf("Triangles[%d] = %d, want %d", i, mesh.Triangles[i], w)
		}
	}

	// Root vertices: translated by 10 on X, then scaled by 2 on X.
	// v' = 2 * (x + 10).
	for i, src := range rootMesh.Vertices {
		got := mesh.Vertex(i)
		wantX := 2 * (src.X() + 10)
		if !almostEqual(got.X(), wantX) {
			t.Errorf("root vertex %d X = %g, want %g", i, got.X(), wantX)
		}
		if !almostEqual(got.Y(), src.Y()) || !almostEqual(got.Z(), src.Z()) {
			t.Errorf("root vertex %d = %v, want Y/Z unchanged from %v", i, got, src)
		}
	}

	// Child vertices: the child inherits the root's translation.
	for i, src := range childMesh.Vertices {
		got := mesh.Vertex(3 + i)
		wantX := 2 * (src.X() + 10)
		if !almostEqual(got.X(), wantX) {
			t.Errorf("child vertex %d X = %g, want %g", i, got.X(), wantX)
		}
	}
}

func TestNewMeshFromAssetSkipsNonTriangles(t *testing.T) {
	scene := &Scene{
		Root: &Node{Transform: mgl64.Ident4(), Meshes: []int{0}},
		Meshes: []*MeshData{{
			Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
			Faces: [][]uint32{
				{0, 1, 2, 3}, // quad: skipped, not triangulated
				{0, 1, 2},
			},
		}},
	}
	mesh := NewMeshFromAsset(scene, mgl64.Vec3{1, 1, 1}, "mixed-faces")
	if mesh == nil {
		t.Fatal("NewMeshFromAsset returned nil")
	}
	if mesh.TriangleCount != 1 {
		t.Errorf("TriangleCount = %d, want 1 (quad face must be skipped)", mesh.TriangleCount)
	}
}

func TestNewMeshFromAssetFailures(t *testing.T) {
	tests := []struct {
		name  string
		scene *Scene
	}{
		{"nil scene", nil},
		{"no meshes", &Scene{Root: &Node{Transform: mgl64.Ident4()}}},
		{
			"no vertices",
			&Scene{
				Root:   &Node{Transform: mgl64.Ident4(), Meshes: []int{0}},
				Meshes: []*MeshData{{}},
			},
		},
		{
			"no triangles",
			&Scene{
				Root: &Node{Transform: mgl64.Ident4(), Meshes: []int{0}},
				Meshes: []*MeshData{{
					Vertices: []mgl64.Vec3{{0, 0, 0}},
				}},
			},
		},
	}
	for _, tt := range tests {
		if mesh := NewMeshFromAsset(tt.scene, mgl64.Vec3{1, 1, 1}, tt.name); mesh != nil {
			t.Errorf("%s: got %v, want nil", tt.name, mesh)
		}
	}
}
