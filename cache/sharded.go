package cache

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Sharded for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the xxHash64 of a string key.
func StringHasher(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Sharded is a goroutine-safe memoizing store split into shards.
//
// Unlike Memo it may be shared between goroutines. The create function
// passed to GetOrCreate runs with its shard locked, which guarantees a single
// construction per key even under contention. Keep create free of calls back
// into the same store: re-entering a locked shard deadlocks.
type Sharded[K cmp.Ordered, V any] struct {
	shards [DefaultShardCount]*shard[K, V]
	hasher Hasher[K]

	// Statistics (atomic for lock-free reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// shard is a single shard of the store.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewSharded creates an empty sharded store.
// Use StringHasher for string keys.
func NewSharded[K cmp.Ordered, V any](hasher Hasher[K]) *Sharded[K, V] {
	s := &Sharded[K, V]{hasher: hasher}
	for i := range s.shards {
		s.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return s
}

// getShard returns the shard for a given key.
func (s *Sharded[K, V]) getShard(key K) *shard[K, V] {
	return s.shards[s.hasher(key)&shardMask]
}

// GetOrCreate returns the value stored under key, or calls create and stores
// its result. The boolean reports whether the value came from the store.
//
// A failed create leaves the key absent and its error is returned unchanged.
func (s *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, bool, error) {
	sh := s.getShard(key)

	// Fast path: read lock
	sh.mu.RLock()
	v, ok := sh.entries[key]
	sh.mu.RUnlock()
	if ok {
		s.hits.Add(1)
		return v, true, nil
	}

	// Slow path: create under write lock
	sh.mu.Lock()
	defer sh.mu.Unlock()

	// Re-check after acquiring write lock
	if v, ok := sh.entries[key]; ok {
		s.hits.Add(1)
		return v, true, nil
	}

	s.misses.Add(1)
	v, err := create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	sh.entries[key] = v
	return v, false, nil
}

// Peek returns the value stored under key without touching the counters.
func (s *Sharded[K, V]) Peek(key K) (V, bool) {
	sh := s.getShard(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.entries[key]
	return v, ok
}

// Len returns the total number of entries across all shards.
func (s *Sharded[K, V]) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// Keys returns the stored keys in ascending order.
func (s *Sharded[K, V]) Keys() []K {
	var keys []K
	for _, sh := range s.shards {
		sh.mu.RLock()
		for k := range sh.entries {
			keys = append(keys, k)
		}
		sh.mu.RUnlock()
	}
	slices.Sort(keys)
	return keys
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (s *Sharded[K, V]) ShardLen() [DefaultShardCount]int {
	var lens [DefaultShardCount]int
	for i, sh := range s.shards {
		sh.mu.RLock()
		lens[i] = len(sh.entries)
		sh.mu.RUnlock()
	}
	return lens
}

// Stats returns current statistics.
func (s *Sharded[K, V]) Stats() Stats {
	return newStats(s.Len(), s.hits.Load(), s.misses.Load())
}

// ResetStats sets the counters back to zero. Entries are kept.
func (s *Sharded[K, V]) ResetStats() {
	s.hits.Store(0)
	s.misses.Store(0)
}
