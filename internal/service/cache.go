package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autochef/recipe-gateway/internal/types"
)

const cacheKeyPrefix = "recipe:gen:"

// Fingerprint builds a deterministic cache key for a generation request.
// The prompt is trimmed and the cuisine canonicalized so that equal requests
// fingerprint identically; dietary preference order is preserved because it
// is forwarded to the generator in order.
func Fingerprint(req types.GenerateRecipeRequest) string {
	cuisine := strings.ToUpper(strings.TrimSpace(req.Cuisine))
	if c, ok := types.ParseCuisine(req.Cuisine); ok {
		cuisine = string(c)
	}

	normalized := types.GenerateRecipeRequest{
		Prompt:             strings.TrimSpace(req.Prompt),
		DietaryPreferences: req.DietaryPreferences,
		Cuisine:            cuisine,
	}

	body, _ := json.Marshal(normalized)
	sum := sha256.Sum256(body)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// RecipeCache stores generation responses in Redis with a per-entry TTL.
type RecipeCache struct {
	redis *redis.Client
}

// NewRecipeCache creates a new RecipeCache instance
func NewRecipeCache(redisClient *redis.Client) *RecipeCache {
	return &RecipeCache{redis: redisClient}
}

// Get retrieves a cached response. A missing key returns (nil, nil).
func (c *RecipeCache) Get(ctx context.Context, key string) (*types.RecipeResponse, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached response: %w", err)
	}

	var resp types.RecipeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached response: %w", err)
	}

	return &resp, nil
}

// Put stores a response under the given key. Empty responses are never
// written.
func (c *RecipeCache) Put(ctx context.Context, key string, resp *types.RecipeResponse, ttl time.Duration) error {
	if resp == nil || len(resp.Recipes) == 0 {
		return nil
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}

	return nil
}

// Evict removes a single entry.
func (c *RecipeCache) Evict(ctx context.Context, key string) error {
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to evict cached response: %w", err)
	}
	return nil
}

// Clear removes every generation cache entry.
func (c *RecipeCache) Clear(ctx context.Context) error {
	iter := c.redis.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	return nil
}
