package shapestore

import (
	"path/filepath"
	"reflect"
	"testing"

	"ShapeForge/shared/shapes"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "shapes.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoad(t *testing.T) {
	store := openTestStore(t)

	want := &shapes.Box{Size: [3]float64{1, 2, 3}}
	if err := store.Save("crate", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("crate")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("thing", &shapes.Sphere{Radius: 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("thing", &shapes.Sphere{Radius: 2}); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}
	got, err := store.Load("thing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.(*shapes.Sphere).Radius != 2 {
		t.Errorf("radius = %v, want 2", got.(*shapes.Sphere).Radius)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 {
		t.Errorf("List = %v, want one entry", names)
	}
}

func TestListOrdered(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Save(name, &shapes.Sphere{Radius: 1}); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}
	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save("gone", &shapes.Cone{Radius: 1, Length: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("gone"); err == nil {
		t.Error("Load after Delete: want error, got nil")
	}
	if err := store.Delete("never-existed"); err != nil {
		t.Errorf("Delete unknown name: %v", err)
	}
}

func TestSaveUnsupportedShape(t *testing.T) {
	store := openTestStore(t)
	if err := store.Save("tree", &shapes.OcTree{}); err == nil {
		t.Error("want error for octree, got nil")
	}
}
