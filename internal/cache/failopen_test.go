package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("backend down")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errBackendDown
}
func (brokenStore) GetMany(context.Context, ...string) ([][]byte, error) {
	return nil, errBackendDown
}
func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errBackendDown
}
func (brokenStore) Delete(context.Context, ...string) error { return errBackendDown }
func (brokenStore) DeleteByPattern(context.Context, string) (int, error) {
	return 0, errBackendDown
}
func (brokenStore) Ping(context.Context) error { return errBackendDown }
func (brokenStore) Close() error               { return nil }

func TestFailOpenStore_DegradesReads(t *testing.T) {
	ctx := context.Background()
	s := NewFailOpenStore(brokenStore{})

	v, found, err := s.Get(ctx, "get_menus")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)

	values, err := s.GetMany(ctx, "dish:1", "dish:2")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{nil, nil}, values)

	assert.NoError(t, s.Set(ctx, "get_menus", []byte("x"), time.Minute))
}

func TestFailOpenStore_PropagatesInvalidationErrors(t *testing.T) {
	ctx := context.Background()
	s := NewFailOpenStore(brokenStore{})

	assert.ErrorIs(t, s.Delete(ctx, "get_menus"), errBackendDown)
	_, err := s.DeleteByPattern(ctx, "get_dishes:*")
	assert.ErrorIs(t, err, errBackendDown)
	assert.ErrorIs(t, s.Ping(ctx), errBackendDown)
}

func TestFailOpenStore_PassesThroughHealthyBackend(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore(10, 1)
	s := NewFailOpenStore(mem)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), v)
}
