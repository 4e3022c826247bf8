package cache

import (
	"context"
	"time"

	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// FailOpenStore degrades read and populate failures of the wrapped store to
// misses. Delete errors still propagate so the invalidator can retry them.
type FailOpenStore struct {
	next Store
}

// NewFailOpenStore wraps next.
func NewFailOpenStore(next Store) *FailOpenStore {
	return &FailOpenStore{next: next}
}

// Get reports a miss when the backend fails.
func (s *FailOpenStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok, err := s.next.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed, treating as miss")
		metrics.RecordCacheOperation("get", "degraded")
		return nil, false, nil
	}
	return v, ok, nil
}

// GetMany reports every key as missing when the backend fails.
func (s *FailOpenStore) GetMany(ctx context.Context, keys ...string) ([][]byte, error) {
	v, err := s.next.GetMany(ctx, keys...)
	if err != nil {
		log.Warn().Err(err).Int("keys", len(keys)).Msg("cache mget failed, treating as miss")
		metrics.RecordCacheOperation("get_many", "degraded")
		return make([][]byte, len(keys)), nil
	}
	return v, nil
}

// Set logs and swallows backend failures.
func (s *FailOpenStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.next.Set(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed, skipping populate")
		metrics.RecordCacheOperation("set", "degraded")
	}
	return nil
}

func (s *FailOpenStore) Delete(ctx context.Context, keys ...string) error {
	return s.next.Delete(ctx, keys...)
}

func (s *FailOpenStore) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	return s.next.DeleteByPattern(ctx, pattern)
}

func (s *FailOpenStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *FailOpenStore) Close() error {
	return s.next.Close()
}
