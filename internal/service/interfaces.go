package service

import (
	"context"
	"time"

	"github.com/autochef/recipe-gateway/internal/models"
	"github.com/autochef/recipe-gateway/internal/types"
)

// Validator checks a request before any network call is made.
type Validator interface {
	ValidateRecipeRequest(req types.GenerateRecipeRequest) error
}

// Generator calls the downstream recipe generation service.
type Generator interface {
	Generate(ctx context.Context, req types.GenerateRecipeRequest) (*types.RecipeResponse, error)
}

// ResultCache is the cache-aside layer for generation responses. Callers
// decide when to read and write; implementations report failures as errors
// and callers decide whether those block anything.
type ResultCache interface {
	Get(ctx context.Context, key string) (*types.RecipeResponse, error)
	Put(ctx context.Context, key string, resp *types.RecipeResponse, ttl time.Duration) error
	Evict(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// RecipeStore persists generated recipe artifacts.
type RecipeStore interface {
	Save(ctx context.Context, record *models.PersistedRecipe) error
	GetByID(ctx context.Context, id string) (*models.PersistedRecipe, error)
	ListAll(ctx context.Context) ([]models.PersistedRecipe, error)
}
