// Package shapeops converts between shape values, interchange messages and
// the text persistence format, and answers extents queries. All entry points
// signal failure with a nil/zero result plus a logged diagnostic; none panic.
package shapeops

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/meshing"
	"ShapeForge/shared/shapemsg"
	"ShapeForge/shared/shapes"
)

// NewMessageFromShape maps a shape to its interchange message. It is total
// over sphere, box, cylinder, cone, plane and mesh; any other kind (octree,
// nil) yields an error naming the kind. Dimension slices are allocated at the
// exact per-type count.
func NewMessageFromShape(s shapes.Shape) (shapemsg.ShapeMsg, error) {
	switch s := s.(type) {
	case *shapes.Sphere:
		prim := &shapemsg.SolidPrimitive{
			Type:       shapemsg.SpherePrimitive,
			Dimensions: make([]float64, shapemsg.DimCount(shapemsg.SpherePrimitive)),
		}
		prim.Dimensions[shapemsg.SphereRadius] = s.Radius
		return prim, nil

	case *shapes.Box:
		prim := &shapemsg.SolidPrimitive{
			Type:       shapemsg.BoxPrimitive,
			Dimensions: make([]float64, shapemsg.DimCount(shapemsg.BoxPrimitive)),
		}
		prim.Dimensions[shapemsg.BoxX] = s.Size[0]
		prim.Dimensions[shapemsg.BoxY] = s.Size[1]
		prim.Dimensions[shapemsg.BoxZ] = s.Size[2]
		return prim, nil

	case *shapes.Cylinder:
		prim := &shapemsg.SolidPrimitive{
			Type:       shapemsg.CylinderPrimitive,
			Dimensions: make([]float64, shapemsg.DimCount(shapemsg.CylinderPrimitive)),
		}
		prim.Dimensions[shapemsg.CylinderRadius] = s.Radius
		prim.Dimensions[shapemsg.CylinderHeight] = s.Length
		return prim, nil

	case *shapes.Cone:
		prim := &shapemsg.SolidPrimitive{
			Type:       shapemsg.ConePrimitive,
			Dimensions: make([]float64, shapemsg.DimCount(shapemsg.ConePrimitive)),
		}
		prim.Dimensions[shapemsg.ConeRadius] = s.Radius
		prim.Dimensions[shapemsg.ConeHeight] = s.Length
		return prim, nil

	case *shapes.Plane:
		return &shapemsg.Plane{Coef: [4]float64{s.A, s.B, s.C, s.D}}, nil

	case *shapes.Mesh:
		msg := &shapemsg.Mesh{
			Vertices:  make([]shapemsg.Point, s.VertexCount),
			Triangles: make([]shapemsg.MeshTriangle, s.TriangleCount),
		}
		for i := 0; i < s.VertexCount; i++ {
			i3 := 3 * i
			msg.Vertices[i] = shapemsg.Point{
				X: s.Vertices[i3],
				Y: s.Vertices[i3+1],
				Z: s.Vertices[i3+2],
			}
		}
		for i := 0; i < s.TriangleCount; i++ {
			i3 := 3 * i
			msg.Triangles[i].VertexIndices = [3]uint32{
				s.Triangles[i3],
				s.Triangles[i3+1],
				s.Triangles[i3+2],
			}
		}
		return msg, nil
	}

	return nil, fmt.Errorf("cannot construct shape message for shape of kind %v", shapes.KindOf(s))
}

// NewShapeFromMessage maps an interchange message back to a shape. Failures
// (unknown primitive type, under-specified dimensions, empty mesh) are logged
// and yield nil.
func NewShapeFromMessage(msg shapemsg.ShapeMsg) shapes.Shape {
	switch m := msg.(type) {
	case *shapemsg.SolidPrimitive:
		return newShapeFromSolidPrimitive(m)
	case *shapemsg.Plane:
		return &shapes.Plane{A: m.Coef[0], B: m.Coef[1], C: m.Coef[2], D: m.Coef[3]}
	case *shapemsg.Mesh:
		return newShapeFromMeshMsg(m)
	}
	log.Printf("[ShapeOps] cannot construct shape from message of type %T", msg)
	return nil
}

// newShapeFromSolidPrimitive checks every dimension index the target type
// requires, not just the total length.
func newShapeFromSolidPrimitive(m *shapemsg.SolidPrimitive) shapes.Shape {
	dims := m.Dimensions
	switch m.Type {
	case shapemsg.SpherePrimitive:
		if len(dims) > shapemsg.SphereRadius {
			return &shapes.Sphere{Radius: dims[shapemsg.SphereRadius]}
		}
	case shapemsg.BoxPrimitive:
		if len(dims) > shapemsg.BoxX && len(dims) > shapemsg.BoxY && len(dims) > shapemsg.BoxZ {
			return &shapes.Box{Size: [3]float64{
				dims[shapemsg.BoxX],
				dims[shapemsg.BoxY],
				dims[shapemsg.BoxZ],
			}}
		}
	case shapemsg.CylinderPrimitive:
		if len(dims) > shapemsg.CylinderRadius && len(dims) > shapemsg.CylinderHeight {
			return &shapes.Cylinder{
				Radius: dims[shapemsg.CylinderRadius],
				Length: dims[shapemsg.CylinderHeight],
			}
		}
	case shapemsg.ConePrimitive:
		if len(dims) > shapemsg.ConeRadius && len(dims) > shapemsg.ConeHeight {
			return &shapes.Cone{
				Radius: dims[shapemsg.ConeRadius],
				Length: dims[shapemsg.ConeHeight],
			}
		}
	}
	log.Printf("[ShapeOps] unable to construct shape for solid primitive of type %d with %d dimensions", m.Type, len(dims))
	return nil
}

// newShapeFromMeshMsg trusts the message's indices and goes through the
// explicit-triangles mesh constructor; no welding.
func newShapeFromMeshMsg(m *shapemsg.Mesh) shapes.Shape {
	if len(m.Vertices) == 0 || len(m.Triangles) == 0 {
		log.Printf("[ShapeOps] mesh message definition is empty")
		return nil
	}
	vertices := make([]mgl64.Vec3, len(m.Vertices))
	for i, p := range m.Vertices {
		vertices[i] = mgl64.Vec3{p.X, p.Y, p.Z}
	}
	triangles := make([]uint32, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		triangles = append(triangles, t.VertexIndices[0], t.VertexIndices[1], t.VertexIndices[2])
	}
	return meshing.NewMeshFromTriangles(vertices, triangles)
}
