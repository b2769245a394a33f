// Package shapes defines the typed geometric shape values that the rest of
// ShapeForge converts, persists and transmits. Shape values are immutable once
// constructed; operations that derive new geometry always build new values.
package shapes

// Kind identifies the concrete type of a Shape.
type Kind int

const (
	UnknownKind Kind = iota
	SphereKind
	CylinderKind
	ConeKind
	BoxKind
	PlaneKind
	MeshKind
	OcTreeKind
)

// String returns the fixed, case-sensitive tag used by the text codec.
func (k Kind) String() string {
	switch k {
	case SphereKind:
		return "sphere"
	case CylinderKind:
		return "cylinder"
	case ConeKind:
		return "cone"
	case BoxKind:
		return "box"
	case PlaneKind:
		return "plane"
	case MeshKind:
		return "mesh"
	case OcTreeKind:
		return "octree"
	}
	return "unknown"
}

// Shape is the closed union over all shape kinds. Only the types in this
// package implement it.
type Shape interface {
	Kind() Kind
}

// Sphere is defined by its radius, centered at the origin.
type Sphere struct {
	Radius float64
}

func (*Sphere) Kind() Kind { return SphereKind }

// Box is an axis-aligned box centered at the origin. Size holds the full
// extent along X, Y and Z.
type Box struct {
	Size [3]float64
}

func (*Box) Kind() Kind { return BoxKind }

// Cylinder is aligned with the Z axis, centered at the origin.
type Cylinder struct {
	Radius float64
	Length float64
}

func (*Cylinder) Kind() Kind { return CylinderKind }

// Cone is aligned with the Z axis; the tip is at z = Length/2 and the base
// disc of the given radius at z = -Length/2.
type Cone struct {
	Radius float64
	Length float64
}

func (*Cone) Kind() Kind { return ConeKind }

// Plane holds the coefficients of the plane equation a*x + b*y + c*z + d = 0.
type Plane struct {
	A, B, C, D float64
}

func (*Plane) Kind() Kind { return PlaneKind }

// OcTree is a volumetric occupancy tree. Its payload is opaque to this
// module and passes through conversions untouched.
type OcTree struct {
	Data []byte
}

func (*OcTree) Kind() Kind { return OcTreeKind }

// KindOf returns the kind of a shape, tolerating nil.
func KindOf(s Shape) Kind {
	if s == nil {
		return UnknownKind
	}
	return s.Kind()
}
