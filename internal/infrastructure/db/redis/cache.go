package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rental-cars/catalog-api/internal/api/metrics"
	"github.com/rental-cars/catalog-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// CarCache is a read-through cache for single-car lookups.
// Key format: car:<id>
type CarCache struct {
	client *redis.Client
}

// NewCarCache creates a CarCache wrapping the given Redis client.
func NewCarCache(client *redis.Client) *CarCache {
	return &CarCache{client: client}
}

// Get returns the cached car and whether the key was present.
func (c *CarCache) Get(ctx context.Context, id string) (*domain.Car, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CarCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var car domain.Car
	if err := json.Unmarshal(raw, &car); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		metrics.CarCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.CarCacheTotal.WithLabelValues("hit").Inc()
	return &car, true, nil
}

// Set stores the car under its id, expiring after cacheTTL.
func (c *CarCache) Set(ctx context.Context, car *domain.Car) error {
	raw, err := json.Marshal(car)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(car.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cache entry for id.
func (c *CarCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *CarCache) key(id string) string {
	return "car:" + id
}
