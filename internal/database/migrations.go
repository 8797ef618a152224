package database

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// defaultRoles are seeded on every start; seeding is idempotent.
var defaultRoles = []string{constants.RoleUser}

// Migrate creates or updates the schema and seeds reference data.
func Migrate(db *gorm.DB) error {
	log.Info("Running database migrations...")
	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.TaskStatus{},
		&models.Label{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := SeedRoles(db); err != nil {
		return err
	}

	log.Info("Database migrations completed")
	return nil
}

// SeedRoles inserts the default roles that are missing.
func SeedRoles(db *gorm.DB) error {
	for _, name := range defaultRoles {
		role := models.Role{Name: name}
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}
	return nil
}
