// ShapeForge viewer: loads a shape from a mesh resource or from its text
// encoding and renders its visualization marker.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"ShapeForge/shared/config"
	"ShapeForge/shared/meshing"
	"ShapeForge/shared/shapeops"
	"ShapeForge/shared/shapes"
	"ShapeForge/shared/viz"
)

func main() {
	// Raylib/OpenGL must run on the main OS thread.
	runtime.LockOSThread()

	resource := flag.String("resource", "", "mesh resource to load (path, file:// or http(s):// URI)")
	text := flag.String("text", "", "file holding a shape in the text encoding")
	width := flag.Int("width", 0, "window width")
	height := flag.Int("height", 0, "window height")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	cfg := config.Load()
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	shape := loadShape(*resource, *text, cfg)
	if shape == nil {
		log.Fatal("no shape to display; pass -resource or -text")
	}

	marker, err := viz.NewMarkerFromShape(shape)
	if err != nil {
		log.Fatalf("cannot build marker: %v", err)
	}
	extents := shapeops.ComputeShapeExtents(shape)
	log.Printf("[Viewer] shape %v, extents %.3f x %.3f x %.3f",
		shapes.KindOf(shape), extents.X(), extents.Y(), extents.Z())

	run(cfg, marker, extents)
}

func loadShape(resource, text string, cfg *config.Config) shapes.Shape {
	if resource != "" {
		scale := mgl64.Vec3{cfg.MeshScale[0], cfg.MeshScale[1], cfg.MeshScale[2]}
		if mesh := meshing.NewMeshFromResource(resource, scale); mesh != nil {
			return mesh
		}
		return nil
	}
	if text != "" {
		f, err := os.Open(text)
		if err != nil {
			log.Printf("[Viewer] %v", err)
			return nil
		}
		defer f.Close()
		return shapeops.NewShapeFromText(f)
	}
	return nil
}

func run(cfg *config.Config, marker *viz.Marker, extents mgl64.Vec3) {
	rl.InitWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(cfg.TargetFPS)

	model, err := marker.LoadModel()
	if err != nil {
		log.Fatalf("cannot load marker model: %v", err)
	}
	defer rl.UnloadModel(model)

	// Pull the camera back far enough to frame the shape.
	dist := float32(extents.Len())
	if dist < 2 {
		dist = 2
	}
	camera := rl.Camera3D{
		Position:   rl.NewVector3(dist, dist, dist),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		rl.BeginMode3D(camera)
		rl.DrawModel(model, rl.NewVector3(0, 0, 0), 1, rl.SkyBlue)
		rl.DrawModelWires(model, rl.NewVector3(0, 0, 0), 1, rl.DarkBlue)
		if cfg.ShowGrid {
			rl.DrawGrid(20, 1)
		}
		rl.EndMode3D()
		rl.DrawFPS(10, 10)
		rl.EndDrawing()
	}
}
