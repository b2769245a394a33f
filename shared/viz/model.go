package viz

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadModel turns the marker into a raylib model on the GPU. It must run
// after the window and OpenGL context exist.
func (m *Marker) LoadModel() (rl.Model, error) {
	switch m.Kind {
	case MarkerCube:
		mesh := rl.GenMeshCube(float32(m.Scale.X()), float32(m.Scale.Y()), float32(m.Scale.Z()))
		return rl.LoadModelFromMesh(mesh), nil
	case MarkerSphere:
		mesh := rl.GenMeshSphere(float32(m.Scale.X()/2), 16, 32)
		return rl.LoadModelFromMesh(mesh), nil
	case MarkerCylinder:
		mesh := rl.GenMeshCylinder(float32(m.Scale.X()/2), float32(m.Scale.Z()), 32)
		return rl.LoadModelFromMesh(mesh), nil
	case MarkerCone:
		mesh := rl.GenMeshCone(float32(m.Scale.X()/2), float32(m.Scale.Z()), 32)
		return rl.LoadModelFromMesh(mesh), nil
	case MarkerTriangleList:
		mesh, err := m.triangleListMesh()
		if err != nil {
			return rl.Model{}, err
		}
		rl.UploadMesh(&mesh, false)
		model := rl.LoadModelFromMesh(mesh)
		freeMeshRAM(&mesh)
		return model, nil
	}
	return rl.Model{}, errors.New("viz: unknown marker kind")
}

// triangleListMesh packs the marker's triangle list into an rl.Mesh. Vertex
// and normal buffers live in C memory because raylib frees them with the
// mesh.
func (m *Marker) triangleListMesh() (rl.Mesh, error) {
	if len(m.Points)%3 != 0 {
		return rl.Mesh{}, errors.New("viz: triangle list length is not a multiple of 3")
	}

	vertices := make([]float32, 0, 3*len(m.Points))
	normals := make([]float32, 0, 3*len(m.Points))
	for i := 0; i+2 < len(m.Points); i += 3 {
		a, b, c := m.Points[i], m.Points[i+1], m.Points[i+2]
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		for _, p := range [3][3]float64{
			{a.X(), a.Y(), a.Z()},
			{b.X(), b.Y(), b.Z()},
			{c.X(), c.Y(), c.Z()},
		} {
			vertices = append(vertices, float32(p[0]), float32(p[1]), float32(p[2]))
			normals = append(normals, float32(n.X()), float32(n.Y()), float32(n.Z()))
		}
	}

	var mesh rl.Mesh
	mesh.VertexCount = int32(len(m.Points))
	mesh.TriangleCount = int32(len(m.Points) / 3)
	mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&vertices[0]), len(vertices)*4))
	mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&normals[0]), len(normals)*4))
	return mesh, nil
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM releases the CPU-side C buffers once the mesh has been
// uploaded to the GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
}
