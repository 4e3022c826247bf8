package cache

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gobwas/glob"
	"github.com/guttosm/menu-service/internal/metrics"
)

const (
	defaultMemoryShards   = 16
	defaultMemoryCapacity = 10000
	cleanupInterval       = time.Minute
)

// MemoryStore is an in-process Store with LRU eviction and per-key TTL.
// Entries are spread across shards to reduce lock contention.
type MemoryStore struct {
	shards    []*memoryShard
	shardMask uint32
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// memoryShard is a single LRU list guarded by its own mutex.
type memoryShard struct {
	mu        sync.Mutex
	capacity  int
	items     map[string]*memoryEntry
	head      *memoryEntry
	tail      *memoryEntry
	hits      int64
	misses    int64
	evictions int64
}

// memoryEntry represents a single cached payload with expiration tracking.
type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
	prev      *memoryEntry
	next      *memoryEntry
}

// NewMemoryStore creates a sharded store holding at most capacity entries.
// numShards is rounded up to a power of two.
func NewMemoryStore(capacity, numShards int) *MemoryStore {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	if numShards <= 0 {
		numShards = defaultMemoryShards
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	s := &MemoryStore{
		shards:    make([]*memoryShard, n),
		shardMask: uint32(n - 1),
		stopCh:    make(chan struct{}),
	}
	for i := range s.shards {
		s.shards[i] = &memoryShard{
			capacity: perShard,
			items:    make(map[string]*memoryEntry, perShard),
		}
	}

	go s.startCleanup()
	return s
}

func (s *MemoryStore) shard(key string) *memoryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&s.shardMask]
}

// Get returns a copy of the payload stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	entry, ok := sh.items[key]
	if !ok {
		atomic.AddInt64(&sh.misses, 1)
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		sh.removeEntry(entry)
		atomic.AddInt64(&sh.misses, 1)
		return nil, false, nil
	}

	sh.moveToFront(entry)
	atomic.AddInt64(&sh.hits, 1)
	return cloneBytes(entry.value), true, nil
}

// GetMany looks up each key independently.
func (s *MemoryStore) GetMany(ctx context.Context, keys ...string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	for i, key := range keys {
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			out[i] = v
		}
	}
	return out, nil
}

// Set stores value under key. A non-positive ttl keeps the entry until it is
// evicted or deleted.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	expiresAt := time.Now().Add(ttl)
	if ttl <= 0 {
		expiresAt = time.Unix(1<<62, 0)
	}

	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if entry, ok := sh.items[key]; ok {
		entry.value = cloneBytes(value)
		entry.expiresAt = expiresAt
		sh.moveToFront(entry)
		return nil
	}

	entry := &memoryEntry{key: key, value: cloneBytes(value), expiresAt: expiresAt}
	sh.items[key] = entry
	sh.addToFront(entry)

	if len(sh.items) > sh.capacity {
		sh.removeTail()
		atomic.AddInt64(&sh.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	return nil
}

// Delete removes the given keys. Absent keys are ignored.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		sh := s.shard(key)
		sh.mu.Lock()
		if entry, ok := sh.items[key]; ok {
			sh.removeEntry(entry)
		}
		sh.mu.Unlock()
	}
	return nil
}

// DeleteByPattern removes every key matching a Redis-style glob. All matches
// are collected across shards before the first deletion.
func (s *MemoryStore) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	var matched []string
	for _, sh := range s.shards {
		sh.mu.Lock()
		for key := range sh.items {
			if g.Match(key) {
				matched = append(matched, key)
			}
		}
		sh.mu.Unlock()
	}

	if err := s.Delete(ctx, matched...); err != nil {
		return 0, err
	}
	return len(matched), nil
}

// Ping always succeeds for the in-process store.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close stops the background cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	return nil
}

// Metrics returns aggregated metrics from all shards.
func (s *MemoryStore) Metrics() Metrics {
	var total Metrics
	for _, sh := range s.shards {
		sh.mu.Lock()
		total.Size += len(sh.items)
		total.Capacity += sh.capacity
		sh.mu.Unlock()
		total.Hits += atomic.LoadInt64(&sh.hits)
		total.Misses += atomic.LoadInt64(&sh.misses)
		total.Evictions += atomic.LoadInt64(&sh.evictions)
	}
	return total
}

func (s *MemoryStore) startCleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries.
func (s *MemoryStore) cleanup() {
	now := time.Now()
	for _, sh := range s.shards {
		sh.mu.Lock()
		for _, entry := range sh.items {
			if now.After(entry.expiresAt) {
				sh.removeEntry(entry)
			}
		}
		sh.mu.Unlock()
	}
	m := s.Metrics()
	metrics.UpdateCacheMetrics(m.Size, m.Capacity)
}

// removeEntry removes an entry from both the map and the linked list.
func (sh *memoryShard) removeEntry(entry *memoryEntry) {
	delete(sh.items, entry.key)
	sh.unlink(entry)
}

func (sh *memoryShard) moveToFront(entry *memoryEntry) {
	if entry == sh.head {
		return
	}
	sh.unlink(entry)
	sh.addToFront(entry)
}

func (sh *memoryShard) addToFront(entry *memoryEntry) {
	entry.prev = nil
	entry.next = sh.head
	if sh.head != nil {
		sh.head.prev = entry
	}
	sh.head = entry
	if sh.tail == nil {
		sh.tail = entry
	}
}

// unlink removes an entry from the linked list without touching the map.
func (sh *memoryShard) unlink(entry *memoryEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		sh.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		sh.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}

// removeTail drops the least recently used entry.
func (sh *memoryShard) removeTail() {
	if sh.tail == nil {
		return
	}
	sh.removeEntry(sh.tail)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
