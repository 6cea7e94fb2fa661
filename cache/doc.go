// Package cache provides generic memoizing stores with hit/miss accounting.
//
// Both stores keep every entry for the lifetime of the store: there is no
// capacity limit and no eviction. They exist to pay an expensive
// construction cost once per key.
//
// # Memo[K, V]
//
// A plain map with counters for single-goroutine use. No locks are taken.
//
//	m := cache.NewMemo[string, *Mesh]()
//	mesh, hit, err := m.GetOrCreate("sphere-1", buildSphere)
//
// # Sharded[K, V]
//
// A goroutine-safe store split into 16 shards. The create function runs with
// the shard lock held, so concurrent callers for the same key still observe
// exactly one construction.
//
//	s := cache.NewSharded[string, *Mesh](cache.StringHasher)
//	mesh, hit, err := s.GetOrCreate("sphere-1", buildSphere)
//
// # Failure
//
// When create returns an error, nothing is stored, the error is returned
// unchanged and the next call for the same key runs create again. The miss is
// still counted.
package cache
