package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		setup         func(*MemoryStore)
		key           string
		expectedValue []byte
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setup: func(s *MemoryStore) {
				_ = s.Set(ctx, "get_menus", []byte(`[]`), time.Minute)
			},
			key:           "get_menus",
			expectedValue: []byte(`[]`),
			expectedFound: true,
		},
		{
			name:          "returns false when key not found",
			setup:         func(*MemoryStore) {},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setup: func(s *MemoryStore) {
				_ = s.Set(ctx, "short", []byte("x"), 20*time.Millisecond)
				time.Sleep(50 * time.Millisecond)
			},
			key:           "short",
			expectedFound: false,
		},
		{
			name: "non-positive ttl never expires",
			setup: func(s *MemoryStore) {
				_ = s.Set(ctx, "forever", []byte("x"), 0)
			},
			key:           "forever",
			expectedValue: []byte("x"),
			expectedFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore(100, 4)
			defer s.Close()
			tt.setup(s)

			value, found, err := s.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, 1)
	defer s.Close()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in, time.Minute))
	in[0] = 'z'

	out, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), out)
	out[0] = 'y'

	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_EvictsLRU(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2, 1)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, s.Set(ctx, "b", []byte("2"), time.Minute))
	_, _, _ = s.Get(ctx, "a")
	require.NoError(t, s.Set(ctx, "c", []byte("3"), time.Minute))

	_, found, _ := s.Get(ctx, "b")
	assert.False(t, found, "least recently used key should be evicted")
	_, found, _ = s.Get(ctx, "a")
	assert.True(t, found)
	_, found, _ = s.Get(ctx, "c")
	assert.True(t, found)

	assert.Equal(t, int64(1), s.Metrics().Evictions)
}

func TestMemoryStore_GetMany(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, 2)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "dish:1", []byte(`"5.00"`), time.Minute))
	require.NoError(t, s.Set(ctx, "dish:3", []byte(`"7.00"`), time.Minute))

	values, err := s.GetMany(ctx, "dish:1", "dish:2", "dish:3")
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, []byte(`"5.00"`), values[0])
	assert.Nil(t, values[1])
	assert.Equal(t, []byte(`"7.00"`), values[2])
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, 2)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, s.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, s.Delete(ctx, "a", "b", "absent"))
	require.NoError(t, s.Delete(ctx))

	_, found, _ := s.Get(ctx, "a")
	assert.False(t, found)
	_, found, _ = s.Get(ctx, "b")
	assert.False(t, found)
}

func TestMemoryStore_DeleteByPattern(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		keys          []string
		pattern       string
		expectedCount int
		remaining     []string
	}{
		{
			name: "star crosses path separators",
			keys: []string{
				"/api/v1/menus/m1",
				"/api/v1/menus/m1/submenus/s1",
				"/api/v1/menus/m1/submenus/s1/dishes/d1",
				"/api/v1/menus/m2/submenus/s2",
			},
			pattern:       "/api/v1/menus/m1/*",
			expectedCount: 2,
			remaining:     []string{"/api/v1/menus/m1", "/api/v1/menus/m2/submenus/s2"},
		},
		{
			name:          "colon namespaced keys",
			keys:          []string{"get_dishes:m1:s1", "get_dishes:m1:s2", "get_dishes:m2:s1"},
			pattern:       "get_dishes:m1:*",
			expectedCount: 2,
			remaining:     []string{"get_dishes:m2:s1"},
		},
		{
			name:          "no matches",
			keys:          []string{"get_menus"},
			pattern:       "get_submenus:*",
			expectedCount: 0,
			remaining:     []string{"get_menus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore(100, 8)
			defer s.Close()
			for _, k := range tt.keys {
				require.NoError(t, s.Set(ctx, k, []byte("v"), time.Minute))
			}

			n, err := s.DeleteByPattern(ctx, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, n)

			for _, k := range tt.remaining {
				_, found, _ := s.Get(ctx, k)
				assert.True(t, found, "key %s should survive", k)
			}
		})
	}
}

func TestMemoryStore_Cleanup(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10, 1)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "old", []byte("1"), 10*time.Millisecond))
	require.NoError(t, s.Set(ctx, "new", []byte("2"), time.Minute))
	time.Sleep(30 * time.Millisecond)

	s.cleanup()
	assert.Equal(t, 1, s.Metrics().Size)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(1000, 16)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := fmt.Sprintf("get_dishes:%d:%d", n, j)
				_ = s.Set(ctx, key, []byte("v"), time.Minute)
				_, _, _ = s.Get(ctx, key)
			}
			_, _ = s.DeleteByPattern(ctx, fmt.Sprintf("get_dishes:%d:*", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, s.Metrics().Size)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	s := NewMemoryStore(10, 1)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Ping(context.Background()))
}
