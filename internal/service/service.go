package service

import (
	"context"
	"encoding/json"
	"time"
)

const catalogCacheTTL = 5 * time.Minute

// Cache is the subset of the redis wrapper the services use.
// *cache.Client satisfies it, including a nil *cache.Client.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// cached returns the value stored under key, or calls load and stores its result.
// Cache misses, redis failures and undecodable payloads all fall through to load.
func cached[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	if data, _ := c.Get(ctx, key); data != nil {
		var hit T
		if err := json.Unmarshal(data, &hit); err == nil {
			return hit, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if payload, err := json.Marshal(v); err == nil {
		_ = c.Set(ctx, key, payload, catalogCacheTTL)
	}
	return v, nil
}
