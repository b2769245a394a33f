package shapeops

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/shapemsg"
	"ShapeForge/shared/shapes"
)

func TestComputeShapeExtents(t *testing.T) {
	tests := []struct {
		name  string
		shape shapes.Shape
		want  mgl64.Vec3
	}{
		{"sphere", &shapes.Sphere{Radius: 0.5}, mgl64.Vec3{1, 1, 1}},
		{"box", &shapes.Box{Size: [3]float64{1, 2, 3}}, mgl64.Vec3{1, 2, 3}},
		{"cylinder", &shapes.Cylinder{Radius: 0.5, Length: 2}, mgl64.Vec3{1, 1, 2}},
		{"cone", &shapes.Cone{Radius: 1, Length: 3}, mgl64.Vec3{2, 2, 3}},
		{"plane", &shapes.Plane{A: 1, D: 2}, mgl64.Vec3{}},
		{"octree", &shapes.OcTree{}, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		if got := ComputeShapeExtents(tt.shape); got != tt.want {
			t.Errorf("%s: extents = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestComputeShapeExtentsMesh(t *testing.T) {
	mesh := sampleMesh(t)
	if got, want := ComputeShapeExtents(mesh), (mgl64.Vec3{1, 1, 0}); got != want {
		t.Errorf("extents = %v, want %v", got, want)
	}
}

func TestComputeMsgExtentsMalformed(t *testing.T) {
	tests := []struct {
		name string
		msg  shapemsg.ShapeMsg
	}{
		{"box short dims", &shapemsg.SolidPrimitive{Type: shapemsg.BoxPrimitive, Dimensions: []float64{1, 2}}},
		{"unknown primitive", &shapemsg.SolidPrimitive{Type: 42, Dimensions: []float64{1, 2, 3}}},
		{"empty mesh", &shapemsg.Mesh{}},
		{"nil", nil},
	}
	for _, tt := range tests {
		if got := ComputeMsgExtents(tt.msg); got != (mgl64.Vec3{}) {
			t.Errorf("%s: extents = %v, want zero", tt.name, got)
		}
	}
}

func TestComputeMsgExtentsMeshOffset(t *testing.T) {
	// Extents measure the bounding size, independent of where the mesh sits.
	msg := &shapemsg.Mesh{
		Vertices: []shapemsg.Point{
			{X: 10, Y: -1, Z: 5},
			{X: 12, Y: 3, Z: 5},
			{X: 11, Y: 0, Z: 6},
		},
		Triangles: []shapemsg.MeshTriangle{{VertexIndices: [3]uint32{0, 1, 2}}},
	}
	if got, want := ComputeMsgExtents(msg), (mgl64.Vec3{2, 4, 1}); got != want {
		t.Errorf("extents = %v, want %v", got, want)
	}
}
