package migration

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrate user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.MedicineScan{}); err != nil {
		return fmt.Errorf("migrate medicine scan table: %w", err)
	}
	if err := db.AutoMigrate(&entities.NewsAlert{}); err != nil {
		return fmt.Errorf("migrate news alert table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
