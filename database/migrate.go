package database

import (
	"visionvault_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Designer{},
		&models.Consumer{},
		&models.JobPost{},
		&models.Post{},
	)
}
