// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphmesh

import "go.trai.ch/zerr"

// Element kinds used as cache key prefixes.
const (
	KindNode      = "node"
	KindArrowhead = "arrowhead"
)

// ElementFactory turns element styles into instances through a
// TemplateCache, building templates from a ShapeRegistry on cache misses.
//
// Factories hold no cache of their own, so one TemplateCache can serve
// several factories; their kinds keep the keys apart.
type ElementFactory struct {
	kind   string
	shapes *ShapeRegistry
}

// NewElementFactory creates a factory for elements of the given kind.
func NewElementFactory(kind string, shapes *ShapeRegistry) *ElementFactory {
	return &ElementFactory{kind: kind, shapes: shapes}
}

// NewNodeMeshFactory creates a factory for node meshes.
func NewNodeMeshFactory(shapes *ShapeRegistry) *ElementFactory {
	return NewElementFactory(KindNode, shapes)
}

// NewArrowheadFactory creates a factory for edge arrowheads.
func NewArrowheadFactory(shapes *ShapeRegistry) *ElementFactory {
	return NewElementFactory(KindArrowhead, shapes)
}

// Kind returns the element kind.
func (f *ElementFactory) Kind() string { return f.kind }

// Shapes returns the registry the factory looks creators up in.
func (f *ElementFactory) Shapes() *ShapeRegistry { return f.shapes }

// CacheKey returns "<kind>-style-<styleID>-<2d|3d>". The rendering mode is
// part of the key because one style needs a lit and an unlit template.
func (f *ElementFactory) CacheKey(opts ElementOptions) string {
	mode := "3d"
	if opts.Is2D {
		mode = "2d"
	}
	return f.kind + "-style-" + opts.StyleID + "-" + mode
}

// Create returns a new instance for the element. The template behind it is
// built from create only when the cache has none for the element's key.
//
// Configuration errors (no shape type, unknown shape type) and creator
// errors are reported here and leave the key uncached.
func (f *ElementFactory) Create(c *TemplateCache, opts ElementOptions, create CreateOptions) (*Instance, error) {
	key := f.CacheKey(opts)
	return c.Get(key, func() (*Template, error) {
		return f.buildTemplate(key, opts, create)
	})
}

// buildTemplate resolves the shape, runs its creator and attaches the
// material.
func (f *ElementFactory) buildTemplate(key string, opts ElementOptions, create CreateOptions) (*Template, error) {
	if create.Shape == nil || create.Shape.Type == "" {
		return nil, zerr.With(ErrMissingShapeType, "key", key)
	}
	shapeType := create.Shape.Type

	size := opts.Size
	if create.Shape.Size > 0 {
		size = create.Shape.Size
	}

	creator, ok := f.shapes.Lookup(shapeType)
	if !ok {
		return nil, &UnknownShapeError{Kind: f.kind, Type: shapeType}
	}

	tpl, err := creator(size)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, zerr.With(ErrNilTemplate, "shape", shapeType)
	}

	if err := tpl.SetMaterial(BuildMaterial(key, create, opts.Is2D)); err != nil {
		return nil, err
	}
	if nc, ok := ResolveColor(create.textureColor()); ok && nc.HasOpacity {
		if err := tpl.SetVisibility(nc.Opacity); err != nil {
			return nil, err
		}
	}
	return tpl, nil
}
