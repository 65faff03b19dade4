// Package redis provides a Redis-backed read-through cache in front of a
// distance source. Distance lookups sit on the aggregation hot path; the
// cache keeps repeated zone pairs off the underlying source.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 6 * time.Hour

// DistanceCache implements ports.DistanceSource as a read-through cache.
// Cache failures are never surfaced; the lookup falls through to the source.
type DistanceCache struct {
	client *redis.Client
	source ports.DistanceSource
	ttl    time.Duration
}

// NewDistanceCache creates a cache over the given Redis client and fallback
// source. A non-positive TTL selects the default of six hours.
func NewDistanceCache(client *redis.Client, source ports.DistanceSource, ttl time.Duration) *DistanceCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DistanceCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

// Distance resolves a zone-pair distance, preferring the cache. Only found
// distances are cached; unknown pairs always re-consult the source so a
// refreshed dataset becomes visible without a flush.
func (c *DistanceCache) Distance(ctx context.Context, from, to geo.ZoneID) (float64, bool, error) {
	key := cacheKey(from, to)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if km, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			return km, true, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Unreachable cache degrades to a plain source lookup.
		return c.source.Distance(ctx, from, to)
	}

	km, found, err := c.source.Distance(ctx, from, to)
	if err != nil || !found {
		return km, found, err
	}

	c.client.Set(ctx, key, strconv.FormatFloat(km, 'f', -1, 64), c.ttl)
	return km, true, nil
}

// cacheKey builds a symmetric key: distances do not depend on direction, so
// the pair is ordered lexicographically before keying.
func cacheKey(from, to geo.ZoneID) string {
	a, b := string(from), string(to)
	if b < a {
		a, b = b, a
	}
	return "shiprates:distance:" + a + ":" + b
}
