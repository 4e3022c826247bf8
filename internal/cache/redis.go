package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultScanCount   = 500
	defaultDeleteBatch = 500
)

// RedisStore is a Store backed by a single Redis server or a replicated
// primary. Cluster mode is not supported: GetMany and Delete send multi-key
// commands that a cluster rejects across slots.
type RedisStore struct {
	client      *redis.Client
	scanCount   int64
	deleteBatch int
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithScanCount sets the COUNT hint used while scanning for pattern matches.
func WithScanCount(n int64) RedisOption {
	return func(s *RedisStore) {
		if n > 0 {
			s.scanCount = n
		}
	}
}

// WithDeleteBatch sets the number of keys removed per DEL command.
func WithDeleteBatch(n int) RedisOption {
	return func(s *RedisStore) {
		if n > 0 {
			s.deleteBatch = n
		}
	}
}

// NewRedisStore wraps an existing client. The store owns the client and
// closes it on Close.
func NewRedisStore(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:      client,
		scanCount:   defaultScanCount,
		deleteBatch: defaultDeleteBatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the payload stored under key. redis.Nil is a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return b, true, nil
}

// GetMany fetches all keys with a single MGET.
func (s *RedisStore) GetMany(ctx context.Context, keys ...string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	out := make([][]byte, len(keys))
	for i, v := range values {
		switch val := v.(type) {
		case string:
			out[i] = []byte(val)
		case []byte:
			out[i] = val
		}
	}
	return out, nil
}

// Set stores value under key with the given ttl. A non-positive ttl stores
// the key without expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes keys in batches. Any empty input is a no-op.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	for start := 0; start < len(keys); start += s.deleteBatch {
		end := min(start+s.deleteBatch, len(keys))
		if err := s.client.Del(ctx, keys[start:end]...).Err(); err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
	}
	return nil
}

// DeleteByPattern scans for every key matching pattern, then deletes the
// collected set. SCAN may return a key more than once, so matches are
// deduplicated before deletion.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	keys, err := s.scan(ctx, pattern)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := s.Delete(ctx, keys...); err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (s *RedisStore) scan(ctx context.Context, pattern string) ([]string, error) {
	seen := make(map[string]struct{})
	iter := s.client.Scan(ctx, 0, pattern, s.scanCount).Iterator()
	for iter.Next(ctx) {
		seen[iter.Val()] = struct{}{}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan %q: %w", pattern, err)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	return keys, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
