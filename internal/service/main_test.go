package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/menu-service/internal/cache"
	"github.com/stretchr/testify/require"
)

// testEnv bundles a cache backed by an in-memory store and a live invalidator.
type testEnv struct {
	store       *cache.MemoryStore
	cache       *CacheService
	discounts   *DiscountService
	invalidator *Invalidator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := cache.NewMemoryStore(1000, 4)
	cs := NewCacheService(store, time.Minute)
	inv := NewInvalidator(cs, InvalidatorConfig{
		QueueSize:      16,
		Workers:        2,
		MaxRetries:     2,
		AttemptTimeout: time.Second,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	})

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = inv.Stop(ctx)
		_ = store.Close()
	})

	return &testEnv{
		store:       store,
		cache:       cs,
		discounts:   NewDiscountService(store),
		invalidator: inv,
	}
}

// drain waits for all dispatched invalidations.
func (e *testEnv) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.invalidator.Drain(ctx))
}

func (e *testEnv) cached(t *testing.T, key string) bool {
	t.Helper()
	_, found, err := e.store.Get(context.Background(), key)
	require.NoError(t, err)
	return found
}

func (e *testEnv) seed(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, e.store.Set(context.Background(), k, []byte(`{}`), time.Minute))
	}
}
