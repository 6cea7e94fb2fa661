// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"cmp"
	"slices"
)

// Memo is an unbounded memoizing map with hit/miss counters.
//
// Memo is not safe for concurrent use. All calls must come from a single
// goroutine, which matches render-loop owners that build and look up
// templates on one thread. Use Sharded when that does not hold.
type Memo[K cmp.Ordered, V any] struct {
	entries map[K]V
	hits    uint64
	misses  uint64
}

// NewMemo creates an empty Memo.
func NewMemo[K cmp.Ordered, V any]() *Memo[K, V] {
	return &Memo[K, V]{entries: make(map[K]V)}
}

// GetOrCreate returns the value stored under key, or calls create and stores
// its result. The boolean reports whether the value came from the store.
//
// create is called at most once per call and only on a miss. If it fails,
// the key stays absent and the error is returned as-is. create must not call
// back into the same Memo.
func (m *Memo[K, V]) GetOrCreate(key K, create func() (V, error)) (V, bool, error) {
	if v, ok := m.entries[key]; ok {
		m.hits++
		return v, true, nil
	}

	m.misses++
	v, err := create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	m.entries[key] = v
	return v, false, nil
}

// Peek returns the value stored under key without touching the counters.
func (m *Memo[K, V]) Peek(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of stored entries.
func (m *Memo[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the stored keys in ascending order.
func (m *Memo[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Stats returns current statistics.
func (m *Memo[K, V]) Stats() Stats {
	return newStats(len(m.entries), m.hits, m.misses)
}

// ResetStats sets the counters back to zero. Entries are kept.
func (m *Memo[K, V]) ResetStats() {
	m.hits = 0
	m.misses = 0
}
