package database

import (
	"gorm.io/gorm"

	"apnajourney_backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. The
// uuid-ossp extension backs the uuid_generate_v4 column defaults.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Job{},
		&models.News{},
		&models.Application{},
		&models.Inquiry{},
	)
}
