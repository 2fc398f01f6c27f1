package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autochef/recipe-gateway/internal/types"
)

func TestFingerprint(t *testing.T) {
	base := types.GenerateRecipeRequest{
		Prompt:             "quick pasta dinner",
		DietaryPreferences: []string{"vegetarian", "low-sodium"},
		Cuisine:            "ITALIAN",
	}

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, Fingerprint(base), Fingerprint(base))
	})

	t.Run("normalizes prompt whitespace and cuisine case", func(t *testing.T) {
		variant := base
		variant.Prompt = "  quick pasta dinner  "
		variant.Cuisine = "italian"
		assert.Equal(t, Fingerprint(base), Fingerprint(variant))
	})

	t.Run("distinguishes different prompts", func(t *testing.T) {
		variant := base
		variant.Prompt = "slow pasta dinner"
		assert.NotEqual(t, Fingerprint(base), Fingerprint(variant))
	})

	t.Run("preserves dietary preference order", func(t *testing.T) {
		variant := base
		variant.DietaryPreferences = []string{"low-sodium", "vegetarian"}
		assert.NotEqual(t, Fingerprint(base), Fingerprint(variant))
	})

	t.Run("distinguishes cuisines", func(t *testing.T) {
		variant := base
		variant.Cuisine = "THAI"
		assert.NotEqual(t, Fingerprint(base), Fingerprint(variant))
	})
}

func TestRecipeCache(t *testing.T) {
	// Skip this test if no Redis is available
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("Skipping Redis-dependent test - REDIS_HOST not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":6379",
	})
	cache := NewRecipeCache(client)
	ctx := context.Background()

	resp := &types.RecipeResponse{Recipes: []types.Recipe{{Title: "Garlic Pasta", Instructions: "Boil and toss."}}}
	key := Fingerprint(types.GenerateRecipeRequest{Prompt: "cache round trip", Cuisine: "ITALIAN"})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, resp, time.Minute))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, resp.Recipes, got.Recipes)
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		got, err := cache.Get(ctx, cacheKeyPrefix+"does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty response is never written", func(t *testing.T) {
		emptyKey := Fingerprint(types.GenerateRecipeRequest{Prompt: "empty result", Cuisine: "THAI"})
		require.NoError(t, cache.Put(ctx, emptyKey, &types.RecipeResponse{}, time.Minute))

		got, err := cache.Get(ctx, emptyKey)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("evict removes the entry", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, resp, time.Minute))
		require.NoError(t, cache.Evict(ctx, key))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("clear removes all generation entries", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, resp, time.Minute))
		require.NoError(t, cache.Clear(ctx))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
