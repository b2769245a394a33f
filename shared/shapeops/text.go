package shapeops

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"ShapeForge/shared/shapes"
)

// ftoa prints a float with the shortest representation that survives a
// round-trip through the text codec.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveAsText writes the shape's text encoding: one type-tag line followed by
// whitespace-separated numeric fields. Returns false for kinds the codec does
// not support (octree).
func SaveAsText(s shapes.Shape, w io.Writer) bool {
	switch s := s.(type) {
	case *shapes.Sphere:
		fmt.Fprintf(w, "%v\n%s\n", shapes.SphereKind, ftoa(s.Radius))
	case *shapes.Box:
		fmt.Fprintf(w, "%v\n%s %s %s\n", shapes.BoxKind, ftoa(s.Size[0]), ftoa(s.Size[1]), ftoa(s.Size[2]))
	case *shapes.Cylinder:
		fmt.Fprintf(w, "%v\n%s %s\n", shapes.CylinderKind, ftoa(s.Radius), ftoa(s.Length))
	case *shapes.Cone:
		fmt.Fprintf(w, "%v\n%s %s\n", shapes.ConeKind, ftoa(s.Radius), ftoa(s.Length))
	case *shapes.Plane:
		fmt.Fprintf(w, "%v\n%s %s %s %s\n", shapes.PlaneKind, ftoa(s.A), ftoa(s.B), ftoa(s.C), ftoa(s.D))
	case *shapes.Mesh:
		fmt.Fprintf(w, "%v\n%d %d\n", shapes.MeshKind, s.VertexCount, s.TriangleCount)
		for i := 0; i < s.VertexCount; i++ {
			i3 := 3 * i
			fmt.Fprintf(w, "%s %s %s\n", ftoa(s.Vertices[i3]), ftoa(s.Vertices[i3+1]), ftoa(s.Vertices[i3+2]))
		}
		for i := 0; i < s.TriangleCount; i++ {
			i3 := 3 * i
			fmt.Fprintf(w, "%d %d %d\n", s.Triangles[i3], s.Triangles[i3+1], s.Triangles[i3+2])
		}
	default:
		log.Printf("[ShapeOps] unable to save shape of kind %v as text", shapes.KindOf(s))
		return false
	}
	return true
}

// NewShapeFromText reads a shape from its text encoding. The format is
// schema-less and positional: a truncated or malformed numeric stream yields
// a partially-initialized shape rather than a decode error, so callers
// needing strict validation must pre-validate the stream. An unrecognized
// type tag is logged and yields nil.
func NewShapeFromText(r io.Reader) shapes.Shape {
	var tag string
	if _, err := fmt.Fscan(r, &tag); err != nil {
		return nil
	}

	switch tag {
	case shapes.SphereKind.String():
		s := &shapes.Sphere{}
		fmt.Fscan(r, &s.Radius)
		return s

	case shapes.BoxKind.String():
		s := &shapes.Box{}
		fmt.Fscan(r, &s.Size[0], &s.Size[1], &s.Size[2])
		return s

	case shapes.CylinderKind.String():
		s := &shapes.Cylinder{}
		fmt.Fscan(r, &s.Radius, &s.Length)
		return s

	case shapes.ConeKind.String():
		s := &shapes.Cone{}
		fmt.Fscan(r, &s.Radius, &s.Length)
		return s

	case shapes.PlaneKind.String():
		s := &shapes.Plane{}
		fmt.Fscan(r, &s.A, &s.B, &s.C, &s.D)
		return s

	case shapes.MeshKind.String():
		var vertexCount, triangleCount int
		fmt.Fscan(r, &vertexCount, &triangleCount)
		if vertexCount < 0 || triangleCount < 0 {
			log.Printf("[ShapeOps] invalid mesh counts %d %d in text stream", vertexCount, triangleCount)
			return nil
		}
		m := shapes.NewMesh(vertexCount, triangleCount)
		for i := range m.Vertices {
			fmt.Fscan(r, &m.Vertices[i])
		}
		for i := range m.Triangles {
			fmt.Fscan(r, &m.Triangles[i])
		}
		m.ComputeNormals()
		return m
	}

	log.Printf("[ShapeOps] unknown shape type: '%s'", tag)
	return nil
}
