package cache

// Stats holds cache statistics for monitoring.
type Stats struct {
	Len     int     // Number of stored entries
	Hits    uint64  // Lookups that found an entry
	Misses  uint64  // Lookups that ran the create function
	HitRate float64 // Hits / (Hits + Misses), 0 when no lookups happened
}

func newStats(length int, hits, misses uint64) Stats {
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:     length,
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}
