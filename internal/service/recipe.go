package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/autochef/recipe-gateway/internal/models"
	"github.com/autochef/recipe-gateway/internal/types"
)

const persistTimeout = 10 * time.Second

// RecipeService orchestrates recipe generation: validation, cache lookup,
// the downstream call, and best-effort caching and persistence of the
// result. Cache and store failures are logged and never reach the caller;
// validation and downstream failures propagate as their typed errors.
type RecipeService struct {
	validator Validator
	generator Generator
	cache     ResultCache
	store     RecipeStore

	cacheTTL    time.Duration
	syncPersist bool
}

// NewRecipeService creates a new RecipeService instance. When syncPersist is
// false the artifact write happens in the background after the response is
// returned.
func NewRecipeService(validator Validator, generator Generator, cache ResultCache, store RecipeStore, cacheTTL time.Duration, syncPersist bool) *RecipeService {
	return &RecipeService{
		validator:   validator,
		generator:   generator,
		cache:       cache,
		store:       store,
		cacheTTL:    cacheTTL,
		syncPersist: syncPersist,
	}
}

// GenerateRecipe handles one generation request end to end.
func (s *RecipeService) GenerateRecipe(ctx context.Context, req types.GenerateRecipeRequest) (*types.RecipeResponse, error) {
	if err := s.validator.ValidateRecipeRequest(req); err != nil {
		return nil, err
	}

	key := Fingerprint(req)

	// Cache-aside read. A failing cache degrades to a miss, never to an
	// error for the caller.
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("recipe cache get failed, falling through to generator: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	resp, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	// Empty results are returned as-is but never cached or persisted.
	if resp == nil || len(resp.Recipes) == 0 {
		return &types.RecipeResponse{Recipes: []types.Recipe{}}, nil
	}

	if err := s.cache.Put(ctx, key, resp, s.cacheTTL); err != nil {
		log.Printf("recipe cache put failed: %v", err)
	}

	record, err := buildRecord(req, resp.Recipes[0])
	if err != nil {
		log.Printf("failed to build recipe record: %v", err)
		return resp, nil
	}

	if s.syncPersist {
		if err := s.store.Save(ctx, record); err != nil {
			log.Printf("failed to persist recipe %s: %v", record.ID, err)
		}
	} else {
		// Detached from the request context so a cancelled caller never
		// aborts a write already under way.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			defer cancel()
			if err := s.store.Save(ctx, record); err != nil {
				log.Printf("failed to persist recipe %s: %v", record.ID, err)
			}
		}()
	}

	return resp, nil
}

// GetRecipe retrieves an archived recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.PersistedRecipe, error) {
	return s.store.GetByID(ctx, id)
}

// ListRecipes lists every archived recipe.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.PersistedRecipe, error) {
	return s.store.ListAll(ctx)
}

// buildRecord derives the artifact record from the first recipe of a
// response. Only recipes[0] of a multi-recipe response is archived.
func buildRecord(req types.GenerateRecipeRequest, recipe types.Recipe) (*models.PersistedRecipe, error) {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize ingredients: %w", err)
	}

	cuisine, _ := types.ParseCuisine(req.Cuisine)

	return &models.PersistedRecipe{
		ID:                 uuid.New().String(),
		Title:              recipe.Title,
		Ingredients:        string(ingredients),
		Instructions:       recipe.Instructions,
		CookTimeMinutes:    recipe.CookTimeMinutes,
		Prompt:             req.Prompt,
		Cuisine:            string(cuisine),
		DietaryPreferences: models.StringArray(req.DietaryPreferences),
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}, nil
}
