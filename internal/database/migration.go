package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Brandon-Mardis/Equip/internal/models"
)

// AutoMigrate runs database schema migrations for all models. The cascade
// from sessions to assets and requests comes from the model constraints.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Session{},
		&models.Asset{},
		&models.Request{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
