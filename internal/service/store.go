package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/autochef/recipe-gateway/internal/models"
)

// ErrRecipeNotFound is returned by store lookups for ids with no record.
var ErrRecipeNotFound = errors.New("recipe not found")

// GormRecipeStore persists recipe artifacts in a relational database.
type GormRecipeStore struct {
	db    *gorm.DB
	table string
}

// NewGormRecipeStore creates a new GormRecipeStore instance
func NewGormRecipeStore(db *gorm.DB, table string) *GormRecipeStore {
	return &GormRecipeStore{db: db, table: table}
}

// Save writes a new artifact record. Records are write-once; every record
// carries a fresh id, so retried writes never collide.
func (s *GormRecipeStore) Save(ctx context.Context, record *models.PersistedRecipe) error {
	return s.db.WithContext(ctx).Table(s.table).Create(record).Error
}

// GetByID retrieves a single artifact record.
func (s *GormRecipeStore) GetByID(ctx context.Context, id string) (*models.PersistedRecipe, error) {
	var record models.PersistedRecipe
	err := s.db.WithContext(ctx).Table(s.table).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListAll returns every archived recipe, newest first.
func (s *GormRecipeStore) ListAll(ctx context.Context) ([]models.PersistedRecipe, error) {
	var records []models.PersistedRecipe
	if err := s.db.WithContext(ctx).Table(s.table).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
