package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hotmeal/recommender/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Cache stores computed recommendation lists outside the engine, which
// itself stays a pure function of its inputs. Keys carry user, limit and
// strategy so different requests never collide.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID int64, limit int, strategy string) string {
	return fmt.Sprintf("rec:user:%d:limit:%d:strategy:%s", userID, limit, strategy)
}

// Get returns the cached recommendations and whether the key was present.
func (c *Cache) Get(ctx context.Context, userID int64, limit int, strategy string) ([]domain.RecommendedDish, bool, error) {
	key := buildKey(userID, limit, strategy)
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get recommendations from cache: %w", err)
	}

	var recs []domain.RecommendedDish
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached recommendations %s: %w", key, err)
	}
	return recs, true, nil
}

// Set stores recommendations under the request's key with the configured TTL.
func (c *Cache) Set(ctx context.Context, userID int64, limit int, strategy string, recs []domain.RecommendedDish) error {
	key := buildKey(userID, limit, strategy)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set recommendations in cache: %w", err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
