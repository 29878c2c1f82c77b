package db

import (
	"fmt"

	"dormlife/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle
// is passed explicitly to services and handlers; there is no package-level
// connection.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates or updates every table. Split out so tests can run it
// against an in-memory database.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.Student{},
		&models.Dorm{},
		&models.ContentItem{},
		&models.Rating{},
		&models.CourseSection{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
