// Package shapestore persists named shapes in a SQLite database, storing the
// text encoding of each shape in a blob column.
package shapestore

import (
	"bytes"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ShapeForge/shared/shapeops"
	"ShapeForge/shared/shapes"
)

// ShapeModel is the database schema for one stored shape.
type ShapeModel struct {
	Name      string `gorm:"primaryKey"`
	Kind      string `gorm:"index"`
	Data      []byte // text encoding of the shape
	UpdatedAt time.Time
}

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and runs migrations. Use
// "file::memory:?cache=shared" for an in-memory store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("shapestore: opening %s: %w", path, err)
	}
	if err := db.AutoMigrate(&ShapeModel{}); err != nil {
		return nil, fmt.Errorf("shapestore: migrating: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save upserts a shape under the given name. Shapes the text codec cannot
// encode (octree) are rejected.
func (s *Store) Save(name string, shape shapes.Shape) error {
	var buf bytes.Buffer
	if !shapeops.SaveAsText(shape, &buf) {
		return fmt.Errorf("shapestore: cannot encode shape of kind %v", shapes.KindOf(shape))
	}
	model := ShapeModel{
		Name: name,
		Kind: shapes.KindOf(shape).String(),
		Data: buf.Bytes(),
	}
	return s.db.Save(&model).Error
}

// Load reads the shape stored under name.
func (s *Store) Load(name string) (shapes.Shape, error) {
	var model ShapeModel
	if err := s.db.First(&model, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("shapestore: loading %s: %w", name, err)
	}
	shape := shapeops.NewShapeFromText(bytes.NewReader(model.Data))
	if shape == nil {
		return nil, fmt.Errorf("shapestore: stored data for %s does not decode", name)
	}
	return shape, nil
}

// List returns the names of all stored shapes.
func (s *Store) List() ([]string, error) {
	var names []string
	if err := s.db.Model(&ShapeModel{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("shapestore: listing: %w", err)
	}
	return names, nil
}

// Delete removes a stored shape; deleting an unknown name is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Delete(&ShapeModel{}, "name = ?", name).Error
}
