package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// OutfitCacheTTL is the time-to-live for cached latest-outfit entries.
	OutfitCacheTTL = 24 * time.Hour

	outfitCacheKeyPrefix = "outfit:latest"
)

// CachedOutfit is the denormalized latest-outfit read model stored in Redis.
// The worker warms it from outfit.saved events so the home screen can show
// the most recent look without touching Postgres.
type CachedOutfit struct {
	OutfitID string    `json:"outfit_id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	SavedAt  time.Time `json:"saved_at"`
}

// OutfitCache provides structured read/write operations for latest-outfit
// cache entries. Keys are scoped by userID.
// Key format: "outfit:latest:{userID}"
type OutfitCache struct {
	client *RedisClient
}

// NewOutfitCache creates a new OutfitCache backed by the given RedisClient.
func NewOutfitCache(r *RedisClient) *OutfitCache {
	return &OutfitCache{client: r}
}

// Get retrieves the cached latest outfit for a user.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *OutfitCache) Get(ctx context.Context, userID uuid.UUID) (*CachedOutfit, error) {
	key := c.key(userID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	uid, err := uuid.Parse(vals["user_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse user_id: %w", err)
	}
	score, err := strconv.Atoi(vals["score"])
	if err != nil {
		return nil, fmt.Errorf("cache parse score: %w", err)
	}
	savedAt, err := time.Parse(time.RFC3339Nano, vals["saved_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse saved_at: %w", err)
	}

	return &CachedOutfit{
		OutfitID: vals["outfit_id"],
		UserID:   uid,
		Name:     vals["name"],
		Score:    score,
		SavedAt:  savedAt,
	}, nil
}

// Set writes a cached outfit as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *OutfitCache) Set(ctx context.Context, outfit *CachedOutfit) error {
	key := c.key(outfit.UserID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"outfit_id", outfit.OutfitID,
		"user_id", outfit.UserID.String(),
		"name", outfit.Name,
		"score", strconv.Itoa(outfit.Score),
		"saved_at", outfit.SavedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, OutfitCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached latest outfit.
func (c *OutfitCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "outfit:latest:{userID}"
func (c *OutfitCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", outfitCacheKeyPrefix, userID)
}
