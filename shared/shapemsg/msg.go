// Package shapemsg defines the tagged interchange message union used to
// transmit shapes over a serialization boundary, plus its protobuf wire
// encoding. The field layout and the primitive type/dimension constants are
// fixed: peers doing their own (de)serialization must match them exactly.
package shapemsg

// Primitive type tags for SolidPrimitive.Type.
const (
	BoxPrimitive      uint8 = 1
	SpherePrimitive   uint8 = 2
	CylinderPrimitive uint8 = 3
	ConePrimitive     uint8 = 4
)

// Dimension indices into SolidPrimitive.Dimensions, per primitive type.
const (
	BoxX = 0
	BoxY = 1
	BoxZ = 2

	SphereRadius = 0

	CylinderHeight = 0
	CylinderRadius = 1

	ConeHeight = 0
	ConeRadius = 1
)

// DimCount returns the required dimension count for a primitive type, or 0
// for an unknown type.
func DimCount(primitiveType uint8) int {
	switch primitiveType {
	case BoxPrimitive:
		return 3
	case SpherePrimitive:
		return 1
	case CylinderPrimitive, ConePrimitive:
		return 2
	}
	return 0
}

// SolidPrimitive describes a sphere, box, cylinder or cone through a type tag
// plus a dimension list. The required length and the index semantics of
// Dimensions depend on Type.
type SolidPrimitive struct {
	Type       uint8
	Dimensions []float64
}

// Plane holds the coefficients of a*x + b*y + c*z + d = 0.
type Plane struct {
	Coef [4]float64
}

// Point is one mesh vertex.
type Point struct {
	X, Y, Z float64
}

// MeshTriangle references three vertices of a mesh by index.
type MeshTriangle struct {
	VertexIndices [3]uint32
}

// Mesh carries parallel vertex and triangle lists, structurally the same data
// as shapes.Mesh but as records instead of flat arrays.
type Mesh struct {
	Vertices  []Point
	Triangles []MeshTriangle
}

// ShapeMsg is the closed union over the three message kinds.
type ShapeMsg interface {
	isShapeMsg()
}

func (*SolidPrimitive) isShapeMsg() {}
func (*Plane) isShapeMsg()          {}
func (*Mesh) isShapeMsg()           {}
