package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Lavender333/Aeraapp-sub001/models"
)

var db *gorm.DB

// Init opens the sqlite database at path and migrates the schema.
func Init(path string) error {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := conn.AutoMigrate(&models.SearchRecord{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	db = conn
	return nil
}

// GetDB returns the shared handle, nil before Init.
func GetDB() *gorm.DB {
	return db
}
