package cache

import (
	"strconv"
	"testing"
)

func BenchmarkMemoGetOrCreateHit(b *testing.B) {
	m := NewMemo[string, int]()
	for i := 0; i < 100; i++ {
		_, _, _ = m.GetOrCreate(strconv.Itoa(i), func() (int, error) { return i, nil })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = m.GetOrCreate("50", func() (int, error) { return 0, nil })
	}
}

func BenchmarkShardedGetOrCreateHit(b *testing.B) {
	s := NewSharded[string, int](StringHasher)
	for i := 0; i < 100; i++ {
		_, _, _ = s.GetOrCreate(strconv.Itoa(i), func() (int, error) { return i, nil })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = s.GetOrCreate("50", func() (int, error) { return 0, nil })
	}
}

func BenchmarkShardedGetOrCreateParallel(b *testing.B) {
	s := NewSharded[string, int](StringHasher)
	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _, _ = s.GetOrCreate(keys[i%len(keys)], func() (int, error) { return i, nil })
			i++
		}
	})
}
