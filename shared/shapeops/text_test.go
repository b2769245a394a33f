package shapeops

import (
	"bytes"
	"strings"
	"testing"

	"ShapeForge/shared/shapes"
)

func TestTextRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		shape shapes.Shape
	}{
		{"sphere", &shapes.Sphere{Radius: 0.5}},
		{"box", &shapes.Box{Size: [3]float64{1, 2, 3}}},
		{"cylinder", &shapes.Cylinder{Radius: 0.25, Length: 2}},
		{"cone", &shapes.Cone{Radius: 0.1, Length: 0.7}},
		{"plane", &shapes.Plane{A: 1, B: -2, C: 0.5, D: 4}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if !SaveAsText(tt.shape, &buf) {
			t.Errorf("%s: SaveAsText returned false", tt.name)
			continue
		}
		back := NewShapeFromText(&buf)
		if back == nil {
			t.Errorf("%s: NewShapeFromText returned nil", tt.name)
			continue
		}
		switch want := tt.shape.(type) {
		case *shapes.Sphere:
			if got := back.(*shapes.Sphere); *got != *want {
				t.Errorf("%s: got %+v, want %+v", tt.name, got, want)
			}
		case *shapes.Box:
			if got := back.(*shapes.Box); *got != *want {
				t.Errorf("%s: got %+v, want %+v", tt.name, got, want)
			}
		case *shapes.Cylinder:
			if got := back.(*shapes.Cylinder); *got != *want {
				t.Errorf("%s: got %+v, want %+v", tt.name, got, want)
			}
		case *shapes.Cone:
			if got := back.(*shapes.Cone); *got != *want {
				t.Errorf("%s: got %+v, want %+v", tt.name, got, want)
			}
		case *shapes.Plane:
			if got := back.(*shapes.Plane); *got != *want {
				t.Errorf("%s: got %+v, want %+v", tt.name, got, want)
			}
		}
	}
}

// Values with no short decimal form must still survive the codec.
func TestTextRoundTripAwkwardFloats(t *testing.T) {
	in := &shapes.Box{Size: [3]float64{1.0 / 3.0, 1e-12, 123456.789}}
	var buf bytes.Buffer
	if !SaveAsText(in, &buf) {
		t.Fatal("SaveAsText returned false")
	}
	out, ok := NewShapeFromText(&buf).(*shapes.Box)
	if !ok {
		t.Fatal("did not get a box back")
	}
	if *out != *in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestTextRoundTripMesh(t *testing.T) {
	mesh := sampleMesh(t)

	var buf bytes.Buffer
	if !SaveAsText(mesh, &buf) {
		t.Fatal("SaveAsText returned false")
	}
	back, ok := NewShapeFromText(&buf).(*shapes.Mesh)
	if !ok {
		t.Fatal("did not get a mesh back")
	}
	if back.VertexCount != mesh.VertexCount || back.TriangleCount != mesh.TriangleCount {
		t.Fatalf("decoded mesh is %d/%d, want %d/%d",
			back.VertexCount, back.TriangleCount, mesh.VertexCount, mesh.TriangleCount)
	}
	for i := range mesh.Vertices {
		if back.Vertices[i] != mesh.Vertices[i] {
			t.Errorf("Vertices[%d] = %v, want %v", i, back.Vertices[i], mesh.Vertices[i])
		}
	}
	for i := range mesh.Triangles {
		if back.Triangles[i] != mesh.Triangles[i] {
			t.Errorf("Triangles[%d] = %d, want %d", i, back.Triangles[i], mesh.Triangles[i])
		}
	}
	if len(back.Normals) != 3*back.TriangleCount {
		t.Errorf("decoded mesh has %d normal components, want %d", len(back.Normals), 3*back.TriangleCount)
	}
}

func TestSaveAsTextUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if SaveAsText(&shapes.OcTree{}, &buf) {
		t.Error("octree: want false")
	}
	if buf.Len() != 0 {
		t.Errorf("octree wrote %q", buf.String())
	}
}

func TestNewShapeFromTextBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unknown tag", "teapot 1 2 3\n"},
		{"negative mesh counts", "mesh\n-1 2\n"},
	}
	for _, tt := range tests {
		if got := NewShapeFromText(strings.NewReader(tt.in)); got != nil {
			t.Errorf("%s: got %v, want nil", tt.name, got)
		}
	}
}

// The codec is positional and permissive: a truncated stream yields a
// partially-initialized shape, not an error.
func TestNewShapeFromTextTruncated(t *testing.T) {
	got := NewShapeFromText(strings.NewReader("box\n1 2\n"))
	box, ok := got.(*shapes.Box)
	if !ok {
		t.Fatalf("got %T, want *shapes.Box", got)
	}
	if box.Size != [3]float64{1, 2, 0} {
		t.Errorf("box size = %v, want [1 2 0]", box.Size)
	}
}
