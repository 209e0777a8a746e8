package history

import (
	"encoding/json"
	"fmt"
	"sync"
)

// SeriesCache memoizes generated series by seed so repeated shock
// adjustments in one session reuse a stable baseline instead of
// regenerating it per request.
type SeriesCache interface {
	Get(key string) (Series, bool)
	Set(key string, series Series) error
}

// CacheKey derives the cache key for a generator configuration and seed.
func CacheKey(cfg GeneratorConfig, seed int64) string {
	return fmt.Sprintf("history:%d:%d:%d", cfg.StartYear, cfg.EndYear, seed)
}

// MemoryCache is a process-local SeriesCache safe for concurrent use.
type MemoryCache struct {
	mu     sync.RWMutex
	series map[string]Series
}

// NewMemoryCache creates an empty in-memory series cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{series: make(map[string]Series)}
}

// Get returns the cached series for key, if present.
func (c *MemoryCache) Get(key string) (Series, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	series, ok := c.series[key]
	return series, ok
}

// Set stores the series under key.
func (c *MemoryCache) Set(key string, series Series) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.series[key] = series
	return nil
}

// encodeSeries marshals a series for storage in external caches.
func encodeSeries(series Series) (string, error) {
	data, err := json.Marshal(series)
	if err != nil {
		return "", fmt.Errorf("failed to encode series: %w", err)
	}
	return string(data), nil
}

// decodeSeries unmarshals a series stored by encodeSeries.
func decodeSeries(payload string) (Series, error) {
	var series Series
	if err := json.Unmarshal([]byte(payload), &series); err != nil {
		return nil, fmt.Errorf("failed to decode series: %w", err)
	}
	return series, nil
}

// Resolve returns the series for (cfg, seed), generating and caching it on
// a miss. A nil cache always regenerates.
func Resolve(cache SeriesCache, cfg GeneratorConfig, seed int64) (Series, error) {
	if cache == nil {
		return Generate(cfg, &seed), nil
	}

	key := CacheKey(cfg, seed)
	if series, ok := cache.Get(key); ok {
		return series, nil
	}

	series := Generate(cfg, &seed)
	if err := cache.Set(key, series); err != nil {
		return nil, err
	}
	return series, nil
}
