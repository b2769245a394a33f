package shapeops

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/shapemsg"
	"ShapeForge/shared/shapes"
)

// ComputeMsgExtents returns the axis-aligned bounding size of a message.
// Plane extents are defined as (0,0,0); so are those of malformed messages.
func ComputeMsgExtents(msg shapemsg.ShapeMsg) mgl64.Vec3 {
	switch m := msg.(type) {
	case *shapemsg.Plane:
		return mgl64.Vec3{}
	case *shapemsg.SolidPrimitive:
		return solidPrimitiveExtents(m)
	case *shapemsg.Mesh:
		return meshMsgExtents(m)
	}
	return mgl64.Vec3{}
}

// ComputeShapeExtents round-trips the shape through the message union and
// measures there; shapes that have no message form (octree) get (0,0,0).
func ComputeShapeExtents(s shapes.Shape) mgl64.Vec3 {
	msg, err := NewMessageFromShape(s)
	if err != nil {
		return mgl64.Vec3{}
	}
	return ComputeMsgExtents(msg)
}

func solidPrimitiveExtents(m *shapemsg.SolidPrimitive) mgl64.Vec3 {
	dims := m.Dimensions
	if len(dims) < shapemsg.DimCount(m.Type) {
		return mgl64.Vec3{}
	}
	switch m.Type {
	case shapemsg.SpherePrimitive:
		d := 2 * dims[shapemsg.SphereRadius]
		return mgl64.Vec3{d, d, d}
	case shapemsg.BoxPrimitive:
		return mgl64.Vec3{dims[shapemsg.BoxX], dims[shapemsg.BoxY], dims[shapemsg.BoxZ]}
	case shapemsg.CylinderPrimitive:
		d := 2 * dims[shapemsg.CylinderRadius]
		return mgl64.Vec3{d, d, dims[shapemsg.CylinderHeight]}
	case shapemsg.ConePrimitive:
		d := 2 * dims[shapemsg.ConeRadius]
		return mgl64.Vec3{d, d, dims[shapemsg.ConeHeight]}
	}
	return mgl64.Vec3{}
}

func meshMsgExtents(m *shapemsg.Mesh) mgl64.Vec3 {
	if len(m.Vertices) == 0 {
		return mgl64.Vec3{}
	}
	min := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range m.Vertices {
		v := mgl64.Vec3{p.X, p.Y, p.Z}
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return max.Sub(min)
}
