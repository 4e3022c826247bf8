package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/logger"
	"github.com/guttosm/menu-service/internal/metrics"
)

// DefaultCacheTTL is the expiry applied to populated entries. Invalidation,
// not expiry, keeps entries consistent.
const DefaultCacheTTL = 60 * time.Second

// CacheService serializes entity payloads into a cache.Store and evicts
// related entries after writes.
type CacheService struct {
	store cache.Store
	ttl   time.Duration
}

// NewCacheService creates a cache service over store. A non-positive ttl
// falls back to DefaultCacheTTL.
func NewCacheService(store cache.Store, ttl time.Duration) *CacheService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CacheService{store: store, ttl: ttl}
}

// Store returns the underlying store.
func (c *CacheService) Store() cache.Store {
	return c.store
}

// GetCache fetches and decodes the value under key. A miss returns found ==
// false and a nil error. Store errors propagate. A payload that no longer
// decodes is reported as a miss so the caller repopulates it.
func GetCache[T any](ctx context.Context, c *CacheService, key string) (value T, found bool, err error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		metrics.RecordCacheOperation("get", "error")
		return value, false, fmt.Errorf("cache get %q: %w", key, err)
	}
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache payload")
		metrics.RecordCacheOperation("get", "corrupt")
		var zero T
		return zero, false, nil
	}

	metrics.RecordCacheOperation("get", "hit")
	return value, true, nil
}

// SetCache encodes value and stores it under key with the service TTL.
func (c *CacheService) SetCache(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %q: %w", key, err)
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		metrics.RecordCacheOperation("set", "error")
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	metrics.RecordCacheOperation("set", "success")
	return nil
}

// DeleteCache removes a literal set of keys.
func (c *CacheService) DeleteCache(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		metrics.RecordCacheOperation("delete", "error")
		return fmt.Errorf("cache delete: %w", err)
	}
	metrics.RecordCacheOperation("delete", "success")
	return nil
}

// DeleteRelatedCache evicts every entry that depends on the entity named by
// scope.
func (c *CacheService) DeleteRelatedCache(ctx context.Context, scope Scope) error {
	return c.Invalidate(ctx, RelatedKeys(scope))
}

// Invalidate removes the literal keys of set and then every key matching one
// of its patterns. All patterns are attempted even when one fails.
func (c *CacheService) Invalidate(ctx context.Context, set InvalidationSet) error {
	if err := c.DeleteCache(ctx, set.Keys...); err != nil {
		return err
	}

	var errs []error
	for _, pattern := range set.Patterns {
		if _, err := c.store.DeleteByPattern(ctx, pattern); err != nil {
			metrics.RecordCacheOperation("delete_pattern", "error")
			errs = append(errs, fmt.Errorf("cache delete pattern %q: %w", pattern, err))
			continue
		}
		metrics.RecordCacheOperation("delete_pattern", "success")
	}
	return errors.Join(errs...)
}

// readThrough returns the value cached under key, or loads it and populates
// the cache. Errors from load are returned as is and nothing is cached.
func readThrough[T any](ctx context.Context, c *CacheService, key string, load func() (T, error)) (T, error) {
	var zero T

	cached, found, err := GetCache[T](ctx, c, key)
	if err != nil {
		return zero, err
	}
	// A cached null decodes into a nil pointer; reload rather than hand it out.
	if found && !isNilPointer(cached) {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return zero, err
	}
	if err := c.SetCache(ctx, key, value); err != nil {
		return zero, err
	}
	return value, nil
}

func isNilPointer[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
