package meshing

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/shapes"
)

// MeshData is one raw mesh inside an imported scene: positions plus faces as
// index lists. Faces may have any arity; only triangles survive flattening.
type MeshData struct {
	Vertices []mgl64.Vec3
	Faces    [][]uint32
}

// Node is one element of an imported scene graph. Transform is the node's
// local transform, composed with the parent's on traversal. Meshes holds
// indices into Scene.Meshes.
type Node struct {
	Transform mgl64.Mat4
	Meshes    []int
	Children  []*Node
}

// Scene is the root of an imported asset's node hierarchy.
type Scene struct {
	Root   *Node
	Meshes []*MeshData
}

// HasMeshes reports whether the scene references any mesh data at all.
func (s *Scene) HasMeshes() bool {
	return len(s.Meshes) > 0
}

// flattenNode walks the graph pre-order, accumulating the composed transform
// by value, and appends transformed vertices and offset triangle indices to
// the running flat lists. Non-triangular faces are skipped; triangulation is
// the importer's job, not ours.
func flattenNode(sc *Scene, node *Node, parent mgl64.Mat4, scale mgl64.Vec3, vertices *[]mgl64.Vec3, triangles *[]uint32) {
	transform := parent.Mul4(node.Transform)
	for _, mi := range node.Meshes {
		md := sc.Meshes[mi]
		offset := uint32(len(*vertices))
		for _, v := range md.Vertices {
			tv := mgl64.TransformCoordinate(v, transform)
			*vertices = append(*vertices, mgl64.Vec3{
				tv.X() * scale.X(),
				tv.Y() * scale.Y(),
				tv.Z() * scale.Z(),
			})
		}
		for _, face := range md.Faces {
			if len(face) != 3 {
				continue
			}
			*triangles = append(*triangles, offset+face[0], offset+face[1], offset+face[2])
		}
	}
	for _, child := range node.Children {
		flattenNode(sc, child, transform, scale, vertices, triangles)
	}
}

// NewMeshFromAsset flattens an imported scene graph into a single mesh,
// applying the per-axis scale after each node's composed transform. The name
// is only used to identify the source in diagnostics. Returns nil when the
// scene has no meshes, no vertices or no triangles.
func NewMeshFromAsset(scene *Scene, scale mgl64.Vec3, name string) *shapes.Mesh {
	if scene == nil || !scene.HasMeshes() {
		log.Printf("[Meshing] scene in %s has no meshes", name)
		return nil
	}

	var vertices []mgl64.Vec3
	var triangles []uint32
	if scene.Root != nil {
		flattenNode(scene, scene.Root, mgl64.Ident4(), scale, &vertices, &triangles)
	}

	if len(vertices) == 0 {
		log.Printf("[Meshing] there are no vertices in the scene %s", name)
		return nil
	}
	if len(triangles) == 0 {
		log.Printf("[Meshing] there are no triangles in the scene %s", name)
		return nil
	}

	// Indices are already explicit and disjoint per source mesh, so the
	// trusted entry point is enough; no welding pass.
	return NewMeshFromTriangles(vertices, triangles)
}
