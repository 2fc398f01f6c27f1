package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/autochef/recipe-gateway/internal/models"
)

func newTestStore(t *testing.T) *GormRecipeStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Table("recipes").AutoMigrate(&models.PersistedRecipe{}))
	return NewGormRecipeStore(db, "recipes")
}

func testRecord() *models.PersistedRecipe {
	cookTime := 20
	return &models.PersistedRecipe{
		ID:                 uuid.New().String(),
		Title:              "Garlic Pasta",
		Ingredients:        `[{"name":"pasta","quantity":200,"unit":"g"}]`,
		Instructions:       "Boil pasta, toss with garlic and oil.",
		CookTimeMinutes:    &cookTime,
		Prompt:             "quick pasta dinner",
		Cuisine:            "ITALIAN",
		DietaryPreferences: models.StringArray{"vegetarian"},
		CreatedAt:          "2026-09-01T12:00:00Z",
	}
}

func TestGormRecipeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get by id", func(t *testing.T) {
		store := newTestStore(t)
		record := testRecord()

		require.NoError(t, store.Save(ctx, record))

		got, err := store.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Title, got.Title)
		assert.Equal(t, record.Ingredients, got.Ingredients)
		assert.Equal(t, record.DietaryPreferences, got.DietaryPreferences)
		require.NotNil(t, got.CookTimeMinutes)
		assert.Equal(t, 20, *got.CookTimeMinutes)
	})

	t.Run("get by unknown id", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})

	t.Run("list all", func(t *testing.T) {
		store := newTestStore(t)

		first := testRecord()
		first.CreatedAt = "2026-09-01T10:00:00Z"
		second := testRecord()
		second.Title = "Pad Thai"
		second.Cuisine = "THAI"
		second.CreatedAt = "2026-09-01T11:00:00Z"

		require.NoError(t, store.Save(ctx, first))
		require.NoError(t, store.Save(ctx, second))

		records, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Pad Thai", records[0].Title, "newest first")
	})

	t.Run("nil dietary preferences round-trips as empty", func(t *testing.T) {
		store := newTestStore(t)
		record := testRecord()
		record.DietaryPreferences = nil

		require.NoError(t, store.Save(ctx, record))

		got, err := store.GetByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Empty(t, got.DietaryPreferences)
	})
}
