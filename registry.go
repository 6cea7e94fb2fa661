// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphmesh

import (
	"sort"
	"sync"
)

// ShapeCreator builds the master template for one shape type at the given
// size. Creators are only called on a template cache miss.
type ShapeCreator func(size float64) (*Template, error)

// ShapeRegistry maps shape type names to creators.
//
// The registry is the extension point for new shapes: callers register
// creators at start-up or at any later time without changes to the
// factories.
//
// Example registration:
//
//	reg := graphmesh.BuiltinShapes()
//	reg.Register("capsule", func(size float64) (*graphmesh.Template, error) {
//	    m, err := buildCapsule(size)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return graphmesh.NewTemplate("capsule", m, size), nil
//	})
type ShapeRegistry struct {
	mu       sync.RWMutex
	creators map[string]ShapeCreator
}

// NewShapeRegistry creates a new empty registry.
// Use BuiltinShapes or BuiltinArrowheads for a pre-populated one.
func NewShapeRegistry() *ShapeRegistry {
	return &ShapeRegistry{
		creators: make(map[string]ShapeCreator),
	}
}

// Register adds a creator for shapeType.
// Registering a type that already exists replaces the previous creator.
// A nil creator removes the entry.
func (r *ShapeRegistry) Register(shapeType string, creator ShapeCreator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.creators == nil {
		r.creators = make(map[string]ShapeCreator)
	}
	if creator == nil {
		delete(r.creators, shapeType)
		return
	}
	r.creators[shapeType] = creator
}

// Unregister removes the creator for shapeType.
func (r *ShapeRegistry) Unregister(shapeType string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.creators, shapeType)
}

// Lookup returns the creator for shapeType.
func (r *ShapeRegistry) Lookup(shapeType string) (ShapeCreator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.creators[shapeType]
	return c, ok
}

// Types returns the registered shape types in sorted order.
func (r *ShapeRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.creators))
	for t := range r.creators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Len returns the number of registered shape types.
func (r *ShapeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.creators)
}
