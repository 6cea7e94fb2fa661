// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphmesh

import (
	"go.trai.ch/zerr"

	"github.com/gogpu/graphmesh/cache"
)

// templateStore is the memoizing storage behind a TemplateCache.
// Implemented by cache.Memo and cache.Sharded.
type templateStore interface {
	GetOrCreate(key string, create func() (*Template, error)) (*Template, bool, error)
	Peek(key string) (*Template, bool)
	Len() int
	Keys() []string
	Stats() cache.Stats
	ResetStats()
}

// CacheStats reports the effectiveness of a TemplateCache.
type CacheStats struct {
	Templates int     // Number of cached templates
	Hits      uint64  // Get calls served from an existing template
	Misses    uint64  // Get calls that ran the builder
	HitRate   float64 // Hits / (Hits + Misses)
}

// TemplateCache memoizes one template per cache key and hands out instances.
//
// The first Get for a key runs the builder, hides and freezes the result and
// stores it; every Get, hit or miss, returns a fresh Instance of the stored
// template. Templates live as long as the cache: there is no eviction, and
// Reset clears only the counters.
//
// By default a TemplateCache is meant for a single goroutine and takes no
// locks. Create it with WithConcurrentAccess to share it between goroutines.
//
// Pass the cache explicitly to the factories that use it; there is no
// package-level cache.
type TemplateCache struct {
	store templateStore
	name  string
}

// NewTemplateCache creates an empty cache.
func NewTemplateCache(opts ...CacheOption) *TemplateCache {
	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var store templateStore
	if o.concurrent {
		store = cache.NewSharded[string, *Template](cache.StringHasher)
	} else {
		store = cache.NewMemo[string, *Template]()
	}
	return &TemplateCache{store: store, name: o.name}
}

// Get returns a new instance of the template stored under key, building it
// with build first if the key is absent.
//
// build runs at most once per key for the life of the cache. It must only
// construct and return a new template and must not use the cache itself. If
// it fails, its error is returned unchanged, nothing is stored and a later
// Get with the same key builds again.
func (c *TemplateCache) Get(key string, build func() (*Template, error)) (*Instance, error) {
	if build == nil {
		return nil, ErrNilBuilder
	}

	tpl, _, err := c.store.GetOrCreate(key, func() (*Template, error) {
		return c.build(key, build)
	})
	if err != nil {
		return nil, err
	}
	return tpl.Spawn(), nil
}

// build runs the builder and turns its result into a hidden, frozen master.
func (c *TemplateCache) build(key string, build func() (*Template, error)) (*Template, error) {
	log := Logger()

	tpl, err := build()
	if err != nil {
		log.Warn("graphmesh: template build failed", "cache", c.name, "key", key, "err", err)
		return nil, err
	}
	if tpl == nil {
		return nil, zerr.With(ErrNilTemplate, "key", key)
	}
	if tpl.Frozen() {
		return nil, zerr.With(ErrTemplateFrozen, "key", key)
	}

	tpl.name = key
	tpl.visible = false
	tpl.Freeze()

	log.Debug("graphmesh: template built",
		"cache", c.name,
		"key", key,
		"shape", tpl.shapeType,
		"size", tpl.size,
		"vertices", tpl.VertexCount(),
	)
	return tpl, nil
}

// Template returns the template stored under key without counting a hit or
// miss. Useful for diagnostics.
func (c *TemplateCache) Template(key string) (*Template, bool) {
	return c.store.Peek(key)
}

// Keys returns the cached keys in sorted order.
func (c *TemplateCache) Keys() []string {
	return c.store.Keys()
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	return c.store.Len()
}

// Hits returns the number of Get calls served from a cached template.
func (c *TemplateCache) Hits() uint64 {
	return c.store.Stats().Hits
}

// Misses returns the number of Get calls that ran a builder.
func (c *TemplateCache) Misses() uint64 {
	return c.store.Stats().Misses
}

// Stats returns a snapshot of the cache statistics.
func (c *TemplateCache) Stats() CacheStats {
	s := c.store.Stats()
	return CacheStats{
		Templates: s.Len,
		Hits:      s.Hits,
		Misses:    s.Misses,
		HitRate:   s.HitRate,
	}
}

// Reset sets the hit and miss counters to zero. Cached templates are kept,
// so a later Get for a known key is still a hit.
func (c *TemplateCache) Reset() {
	c.store.ResetStats()
}
