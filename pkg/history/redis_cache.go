package history

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a SeriesCache backed by Redis, for deployments that share a
// baseline across simulator instances.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache connects a series cache to the Redis instance at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get returns the cached series for key, if present and decodable.
func (r *RedisCache) Get(key string) (Series, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return nil, false
	}
	series, err := decodeSeries(val)
	if err != nil {
		return nil, false
	}
	return series, true
}

// Set stores the series under key with no expiry.
func (r *RedisCache) Set(key string, series Series) error {
	payload, err := encodeSeries(series)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, key, payload, 0).Err()
}
