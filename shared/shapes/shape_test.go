package shapes

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{UnknownKind, "unknown"},
		{SphereKind, "sphere"},
		{CylinderKind, "cylinder"},
		{ConeKind, "cone"},
		{BoxKind, "box"},
		{PlaneKind, "plane"},
		{MeshKind, "mesh"},
		{OcTreeKind, "octree"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Kind
	}{
		{&Sphere{}, SphereKind},
		{&Box{}, BoxKind},
		{&Cylinder{}, CylinderKind},
		{&Cone{}, ConeKind},
		{&Plane{}, PlaneKind},
		{&Mesh{}, MeshKind},
		{&OcTree{}, OcTreeKind},
		{nil, UnknownKind},
	}
	for _, tt := range tests {
		if got := KindOf(tt.shape); got != tt.want {
			t.Errorf("KindOf(%T) = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestNewMeshSizing(t *testing.T) {
	m := NewMesh(4, 2)
	if len(m.Vertices) != 12 || len(m.Triangles) != 6 || len(m.Normals) != 6 {
		t.Fatalf("buffer lengths = %d/%d/%d, want 12/6/6",
			len(m.Vertices), len(m.Triangles), len(m.Normals))
	}
	// Appending to Vertices must not bleed into the normal buffer.
	_ = append(m.Vertices, 99)
	if m.Normals[0] != 0 {
		t.Error("append to Vertices overwrote Normals")
	}
}

func TestComputeNormals(t *testing.T) {
	m := NewMesh(4, 2)
	copy(m.Vertices, []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		1, 1, 0, // repeated on purpose
	})
	copy(m.Triangles, []uint32{0, 1, 2, 2, 3, 0})
	m.ComputeNormals()

	if got := (mgl64.Vec3{m.Normals[0], m.Normals[1], m.Normals[2]}); got != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("normal 0 = %v, want +Z", got)
	}
	// The second triangle is degenerate (two identical corners).
	for i := 3; i < 6; i++ {
		if m.Normals[i] != 0 {
			t.Errorf("Normals[%d] = %v, want 0", i, m.Normals[i])
		}
	}
	if l := math.Hypot(m.Normals[0], math.Hypot(m.Normals[1], m.Normals[2])); math.Abs(l-1) > 1e-12 {
		t.Errorf("normal 0 length = %v, want 1", l)
	}
}
