package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/autochef/recipe-gateway/config"
	"github.com/autochef/recipe-gateway/internal/models"
)

// NewDatabase connects to PostgreSQL and ensures the artifact table exists.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Table(cfg.StoreTable).AutoMigrate(&models.PersistedRecipe{}); err != nil {
		return nil, fmt.Errorf("failed to migrate recipe table: %w", err)
	}

	return db, nil
}
