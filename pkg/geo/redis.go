package geo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces geolocation entries in Redis.
const DefaultKeyPrefix = "geo:"

// SharedCache is a cache shared between service instances.
// Get reports found=false with a nil error on a miss.
type SharedCache interface {
	Get(ctx context.Context, ip string) (loc Location, found bool, err error)
	Set(ctx context.Context, ip string, loc Location) error
}

// RedisCache stores locations as JSON strings with a TTL.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

// NewRedisCache creates a Redis-backed SharedCache. A zero ttl keeps entries
// until evicted by Redis.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: DefaultKeyPrefix}
}

func (c *RedisCache) Get(ctx context.Context, ip string) (Location, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+ip).Bytes()
	if errors.Is(err, redis.Nil) {
		return Location{}, false, nil
	}
	if err != nil {
		return Location{}, false, errors.Join(ErrCacheFailure, err)
	}

	var loc Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return Location{}, false, errors.Join(ErrCacheFailure, err)
	}
	return loc, true, nil
}

func (c *RedisCache) Set(ctx context.Context, ip string, loc Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return errors.Join(ErrCacheFailure, err)
	}
	if err := c.client.Set(ctx, c.prefix+ip, raw, c.ttl).Err(); err != nil {
		return errors.Join(ErrCacheFailure, err)
	}
	return nil
}
