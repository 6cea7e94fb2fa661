package cache

import (
	"errors"
	"testing"
)

func TestNewMemo(t *testing.T) {
	m := NewMemo[string, int]()
	if m == nil {
		t.Fatal("NewMemo returned nil")
	}
	if m.Len() != 0 {
		t.Errorf("expected empty memo, got %d entries", m.Len())
	}
}

func TestMemoGetOrCreate(t *testing.T) {
	m := NewMemo[string, int]()
	createCalled := 0
	create := func() (int, error) {
		createCalled++
		return 100, nil
	}

	val, hit, err := m.GetOrCreate("key1", create)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Error("expected first call to miss")
	}
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	for i := 0; i < 4; i++ {
		val, hit, err = m.GetOrCreate("key1", func() (int, error) {
			createCalled++
			return 200, nil
		})
		if err != nil || !hit || val != 100 {
			t.Errorf("call %d: got (%d, %v, %v), want (100, true, nil)", i, val, hit, err)
		}
	}

	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
	stats := m.Stats()
	if stats.Hits != 4 || stats.Misses != 1 {
		t.Errorf("expected hits=4 misses=1, got hits=%d misses=%d", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 0.8 {
		t.Errorf("expected HitRate=0.8, got %f", stats.HitRate)
	}
}

func TestMemoCreateError(t *testing.T) {
	m := NewMemo[string, int]()
	boom := errors.New("boom")

	_, _, err := m.GetOrCreate("key1", func() (int, error) { return 0, boom })
	if err != boom {
		t.Fatalf("expected the create error unchanged, got %v", err)
	}
	if _, ok := m.Peek("key1"); ok {
		t.Error("failed create must not store an entry")
	}

	val, hit, err := m.GetOrCreate("key1", func() (int, error) { return 7, nil })
	if err != nil || hit || val != 7 {
		t.Errorf("retry: got (%d, %v, %v), want (7, false, nil)", val, hit, err)
	}
	if got := m.Stats().Misses; got != 2 {
		t.Errorf("expected 2 misses, got %d", got)
	}
}

func TestMemoPeekDoesNotCount(t *testing.T) {
	m := NewMemo[string, int]()
	_, _, _ = m.GetOrCreate("a", func() (int, error) { return 1, nil })

	if v, ok := m.Peek("a"); !ok || v != 1 {
		t.Errorf("Peek(a) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := m.Peek("b"); ok {
		t.Error("Peek(b) found a missing key")
	}
	stats := m.Stats()
	if stats.Hits != 0 || stats.Misses != 1 {
		t.Errorf("Peek changed counters: hits=%d misses=%d", stats.Hits, stats.Misses)
	}
}

func TestMemoResetStatsKeepsEntries(t *testing.T) {
	m := NewMemo[string, int]()
	_, _, _ = m.GetOrCreate("a", func() (int, error) { return 1, nil })
	_, _, _ = m.GetOrCreate("a", func() (int, error) { return 1, nil })

	m.ResetStats()

	stats := m.Stats()
	if stats.Hits != 0 || stats.Misses != 0 || stats.HitRate != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if stats.Len != 1 {
		t.Errorf("expected entries kept, got Len=%d", stats.Len)
	}
	if _, hit, _ := m.GetOrCreate("a", func() (int, error) { return 2, nil }); !hit {
		t.Error("expected hit after ResetStats")
	}
}

func TestMemoKeysSorted(t *testing.T) {
	m := NewMemo[string, int]()
	for _, k := range []string{"c", "a", "b"} {
		_, _, _ = m.GetOrCreate(k, func() (int, error) { return 0, nil })
	}
	keys := m.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
