package meshing

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/retriever"
	"ShapeForge/shared/shapes"
)

// NewMeshFromResource fetches the bytes behind a URI (file path, file:// or
// http(s)://) and builds a mesh from them. The URI doubles as the format hint
// and the diagnostic label. Fetch failures are reported and converted to a
// nil mesh; the single fetch attempt is not retried.
func NewMeshFromResource(uri string, scale mgl64.Vec3) *shapes.Mesh {
	buf, err := retriever.Get(uri)
	if err != nil {
		log.Printf("[Meshing] %v", err)
		return nil
	}
	if len(buf) == 0 {
		log.Printf("[Meshing] retrieved empty mesh for resource '%s'", uri)
		return nil
	}
	mesh := NewMeshFromBuffer(buf, scale, uri)
	if mesh == nil {
		log.Printf("[Meshing] no usable scene in %s", uri)
	}
	return mesh
}
