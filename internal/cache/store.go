// Package cache provides the key/value stores backing the menu cache.
//
// A Store holds opaque byte payloads with a per-key TTL. Serialization and key
// derivation live in the service layer; stores only move bytes.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidPattern is returned when a glob pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid cache key pattern")

// Store defines the operations the cache service needs from a backend.
//
// A miss is reported as found == false with a nil error. Deleting an absent
// key is a no-op.
type Store interface {
	// Get returns the payload stored under key.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// GetMany returns one entry per key, nil for misses, in key order.
	GetMany(ctx context.Context, keys ...string) ([][]byte, error)
	// Set stores value under key, overwriting unconditionally.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes every given key.
	Delete(ctx context.Context, keys ...string) error
	// DeleteByPattern removes every key matching a glob pattern and reports
	// how many were removed. Matches are collected before any deletion.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// StoreWithMetrics extends Store with metrics reporting.
type StoreWithMetrics interface {
	Store
	Metrics() Metrics
}
