package meshing

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hschendel/stl"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/udhos/gwob"

	"ShapeForge/shared/shapes"
)

// formatHint extracts the lower-cased file extension from a resource name.
// Any extension containing "stl" (stl, STL, stlb, ...) is normalized to
// exactly "stl".
func formatHint(name string) string {
	pos := strings.LastIndexByte(name, '.')
	if pos < 0 {
		return ""
	}
	hint := strings.ToLower(name[pos+1:])
	if strings.Contains(hint, "stl") {
		hint = "stl"
	}
	return hint
}

// NewMeshFromBuffer parses a binary asset buffer into a scene graph and
// flattens it into a mesh. The hint is a filename-like string whose extension
// selects the decoder; without a usable hint the content is sniffed. Returns
// nil on an empty buffer or when no decoder can parse it.
func NewMeshFromBuffer(buf []byte, scale mgl64.Vec3, hint string) *shapes.Mesh {
	if len(buf) == 0 {
		log.Printf("[Meshing] cannot construct mesh from empty buffer")
		return nil
	}
	scene, err := decodeScene(buf, formatHint(hint))
	if err != nil {
		log.Printf("[Meshing] cannot parse %s: %v", hint, err)
		return nil
	}
	return NewMeshFromAsset(scene, scale, hint)
}

// decodeScene picks a decoder by extension, falling back to content sniffing
// when the extension is missing or unknown.
func decodeScene(buf []byte, ext string) (*Scene, error) {
	switch ext {
	case "stl":
		return decodeSTL(buf)
	case "obj":
		return decodeOBJ(buf)
	case "gltf", "glb":
		return decodeGLTF(buf)
	}

	if bytes.HasPrefix(buf, []byte("glTF")) || bytes.HasPrefix(bytes.TrimSpace(buf), []byte("{")) {
		return decodeGLTF(buf)
	}
	if sc, err := decodeSTL(buf); err == nil {
		return sc, nil
	}
	if sc, err := decodeOBJ(buf); err == nil {
		return sc, nil
	}
	return nil, errors.New("unrecognized asset format")
}

// singleMeshScene wraps one mesh in a minimal graph: a root node with an
// identity transform referencing mesh 0.
func singleMeshScene(md *MeshData) *Scene {
	return &Scene{
		Root:   &Node{Transform: mgl64.Ident4(), Meshes: []int{0}},
		Meshes: []*MeshData{md},
	}
}

// decodeSTL parses binary or ASCII STL. STL is a triangle soup, so identical
// vertices are merged while indexing the faces, mirroring the usual importer
// post-processing.
func decodeSTL(buf []byte) (*Scene, error) {
	solid, err := stl.ReadAll(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}
	if len(solid.Triangles) == 0 {
		return nil, errors.New("stl: no triangles")
	}

	md := &MeshData{Faces: make([][]uint32, 0, len(solid.Triangles))}
	index := make(map[[3]float64]uint32)
	for _, tri := range solid.Triangles {
		face := make([]uint32, 0, 3)
		for _, v := range tri.Vertices {
			key := [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
			idx, ok := index[key]
			if !ok {
				idx = uint32(len(md.Vertices))
				index[key] = idx
				md.Vertices = append(md.Vertices, mgl64.Vec3(key))
			}
			face = append(face, idx)
		}
		md.Faces = append(md.Faces, face)
	}
	return singleMeshScene(md), nil
}

// decodeOBJ parses Wavefront OBJ into a single indexed mesh. gwob interleaves
// position, texture and normal data into one strided buffer; only the
// position lanes are taken.
func decodeOBJ(buf []byte) (*Scene, error) {
	obj, err := gwob.NewObjFromBuf("buffer", buf, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}

	stride := obj.StrideSize / 4
	offset := obj.StrideOffsetPosition / 4
	if stride <= 0 {
		return nil, errors.New("obj: no vertex data")
	}
	count := len(obj.Coord) / stride

	md := &MeshData{Vertices: make([]mgl64.Vec3, 0, count)}
	for i := 0; i < count; i++ {
		base := i*stride + offset
		md.Vertices = append(md.Vertices, mgl64.Vec3{
			float64(obj.Coord[base]),
			float64(obj.Coord[base+1]),
			float64(obj.Coord[base+2]),
		})
	}
	for i := 0; i+2 < len(obj.Indices); i += 3 {
		md.Faces = append(md.Faces, []uint32{
			uint32(obj.Indices[i]),
			uint32(obj.Indices[i+1]),
			uint32(obj.Indices[i+2]),
		})
	}
	return singleMeshScene(md), nil
}

// decodeGLTF parses glTF (JSON or GLB) preserving the node hierarchy and the
// per-node transforms, so the flattener sees the real scene graph.
func decodeGLTF(buf []byte) (*Scene, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(buf)).Decode(doc); err != nil {
		return nil, fmt.Errorf("gltf: %w", err)
	}

	sc := &Scene{}

	// A glTF mesh may hold several primitives; each becomes one MeshData.
	meshRefs := make([][]int, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			ai, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			pos, err := modeler.ReadPosition(doc, doc.Accessors[ai], nil)
			if err != nil {
				return nil, fmt.Errorf("gltf: %w", err)
			}
			md := &MeshData{Vertices: make([]mgl64.Vec3, len(pos))}
			for i, p := range pos {
				md.Vertices[i] = mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
			}
			if prim.Indices != nil {
				idx, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("gltf: %w", err)
				}
				for i := 0; i+2 < len(idx); i += 3 {
					md.Faces = append(md.Faces, []uint32{idx[i], idx[i+1], idx[i+2]})
				}
			} else {
				for i := 0; i+2 < len(md.Vertices); i += 3 {
					md.Faces = append(md.Faces, []uint32{uint32(i), uint32(i + 1), uint32(i + 2)})
				}
			}
			meshRefs[mi] = append(meshRefs[mi], len(sc.Meshes))
			sc.Meshes = append(sc.Meshes, md)
		}
	}

	var build func(ni int) *Node
	build = func(ni int) *Node {
		gn := doc.Nodes[ni]
		node := &Node{Transform: gltfNodeTransform(gn)}
		if gn.Mesh != nil {
			node.Meshes = meshRefs[int(*gn.Mesh)]
		}
		for _, ci := range gn.Children {
			node.Children = append(node.Children, build(int(ci)))
		}
		return node
	}

	root := &Node{Transform: mgl64.Ident4()}
	if len(doc.Scenes) > 0 {
		si := 0
		if doc.Scene != nil {
			si = int(*doc.Scene)
		}
		for _, ni := range doc.Scenes[si].Nodes {
			root.Children = append(root.Children, build(int(ni)))
		}
	}
	sc.Root = root
	return sc, nil
}

var mat4Identity = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// gltfNodeTransform returns the node's local transform, either its explicit
// column-major matrix or its translation/rotation/scale triplet composed as
// T * R * S.
func gltfNodeTransform(n *gltf.Node) mgl64.Mat4 {
	if n.Matrix != mat4Identity && n.Matrix != [16]float64{} {
		return mgl64.Mat4(n.Matrix)
	}

	scale := n.Scale
	if scale == ([3]float64{}) {
		scale = [3]float64{1, 1, 1}
	}
	rot := n.Rotation
	if rot == ([4]float64{}) {
		rot = [4]float64{0, 0, 0, 1}
	}

	t := mgl64.Translate3D(n.Translation[0], n.Translation[1], n.Translation[2])
	r := mgl64.Quat{W: rot[3], V: mgl64.Vec3{rot[0], rot[1], rot[2]}}.Mat4()
	s := mgl64.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(r).Mul4(s)
}
