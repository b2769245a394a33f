// Package viz builds renderable visualization markers from shapes. Marker
// construction itself is pure; turning a marker into GPU geometry happens in
// LoadModel and needs a live raylib window.
package viz

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/shapemsg"
	"ShapeForge/shared/shapeops"
	"ShapeForge/shared/shapes"
)

// MarkerKind selects the marker geometry.
type MarkerKind int

const (
	MarkerCube MarkerKind = iota
	MarkerSphere
	MarkerCylinder
	MarkerCone
	MarkerTriangleList
)

// Marker is a declarative description of renderable geometry. Scale holds the
// full extents for primitive markers; Points holds a flat triangle list
// (three vertices per triangle) for mesh markers.
type Marker struct {
	Kind   MarkerKind
	Scale  mgl64.Vec3
	Points []mgl64.Vec3
}

// ErrPlaneMarker is returned for planes, which have no bounded geometry to
// render.
var ErrPlaneMarker = errors.New("viz: no visual markers can be constructed for planes")

// NewMarkerFromShape round-trips the shape through the interchange message
// union and builds a marker from the message. Planes are explicitly
// unsupported and reported through ErrPlaneMarker, never a panic.
func NewMarkerFromShape(s shapes.Shape) (*Marker, error) {
	msg, err := shapeops.NewMessageFromShape(s)
	if err != nil {
		return nil, fmt.Errorf("viz: %w", err)
	}
	return NewMarkerFromMessage(msg)
}

// NewMarkerFromMessage builds a marker from an interchange message.
func NewMarkerFromMessage(msg shapemsg.ShapeMsg) (*Marker, error) {
	switch m := msg.(type) {
	case *shapemsg.Plane:
		return nil, ErrPlaneMarker

	case *shapemsg.SolidPrimitive:
		return newPrimitiveMarker(m)

	case *shapemsg.Mesh:
		if len(m.Vertices) == 0 || len(m.Triangles) == 0 {
			return nil, errors.New("viz: mesh message definition is empty")
		}
		marker := &Marker{
			Kind:   MarkerTriangleList,
			Scale:  mgl64.Vec3{1, 1, 1},
			Points: make([]mgl64.Vec3, 0, 3*len(m.Triangles)),
		}
		for _, t := range m.Triangles {
			for _, idx := range t.VertexIndices {
				if int(idx) >= len(m.Vertices) {
					return nil, fmt.Errorf("viz: triangle references vertex %d of %d", idx, len(m.Vertices))
				}
				p := m.Vertices[idx]
				marker.Points = append(marker.Points, mgl64.Vec3{p.X, p.Y, p.Z})
			}
		}
		return marker, nil
	}
	return nil, fmt.Errorf("viz: cannot construct marker for message of type %T", msg)
}

func newPrimitiveMarker(m *shapemsg.SolidPrimitive) (*Marker, error) {
	dims := m.Dimensions
	if len(dims) < shapemsg.DimCount(m.Type) {
		return nil, fmt.Errorf("viz: solid primitive of type %d has %d of %d dimensions",
			m.Type, len(dims), shapemsg.DimCount(m.Type))
	}
	switch m.Type {
	case shapemsg.BoxPrimitive:
		return &Marker{
			Kind:  MarkerCube,
			Scale: mgl64.Vec3{dims[shapemsg.BoxX], dims[shapemsg.BoxY], dims[shapemsg.BoxZ]},
		}, nil
	case shapemsg.SpherePrimitive:
		d := 2 * dims[shapemsg.SphereRadius]
		return &Marker{Kind: MarkerSphere, Scale: mgl64.Vec3{d, d, d}}, nil
	case shapemsg.CylinderPrimitive:
		d := 2 * dims[shapemsg.CylinderRadius]
		return &Marker{
			Kind:  MarkerCylinder,
			Scale: mgl64.Vec3{d, d, dims[shapemsg.CylinderHeight]},
		}, nil
	case shapemsg.ConePrimitive:
		d := 2 * dims[shapemsg.ConeRadius]
		return &Marker{
			Kind:  MarkerCone,
			Scale: mgl64.Vec3{d, d, dims[shapemsg.ConeHeight]},
		}, nil
	}
	return nil, fmt.Errorf("viz: unknown solid primitive type %d", m.Type)
}
