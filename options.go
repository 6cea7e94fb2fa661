package graphmesh

// ElementOptions identifies the visual configuration of one graph element.
type ElementOptions struct {
	// StyleID identifies the resolved style. Elements sharing a StyleID and
	// rendering mode share one template.
	StyleID string
	// Is2D selects flat, unlit rendering.
	Is2D bool
	// Size is the default template size, used unless the shape sets its own.
	Size float64
}

// CreateOptions is the plain style configuration a template is built from.
// It arrives already validated and defaulted from the style layer.
type CreateOptions struct {
	Shape   *ShapeOptions   `yaml:"shape,omitempty"`
	Texture *TextureOptions `yaml:"texture,omitempty"`
	Effect  *EffectOptions  `yaml:"effect,omitempty"`
}

// ShapeOptions selects the shape creator.
type ShapeOptions struct {
	// Type names a creator in the factory's ShapeRegistry. Required.
	Type string `yaml:"type"`
	// Size overrides ElementOptions.Size when positive.
	Size float64 `yaml:"size,omitempty"`
}

// TextureOptions describes the surface color.
type TextureOptions struct {
	Color *ColorSpec `yaml:"color,omitempty"`
}

// EffectOptions describes extra surface effects.
type EffectOptions struct {
	Wireframe bool `yaml:"wireframe,omitempty"`
}

// textureColor returns the texture color spec or nil.
func (o CreateOptions) textureColor() *ColorSpec {
	if o.Texture == nil {
		return nil
	}
	return o.Texture.Color
}

// CacheOption configures a TemplateCache during creation.
//
// Example:
//
//	// Default single-goroutine cache
//	c := graphmesh.NewTemplateCache()
//
//	// Shared between worker goroutines
//	c := graphmesh.NewTemplateCache(graphmesh.WithConcurrentAccess())
type CacheOption func(*cacheOptions)

// cacheOptions holds optional configuration for TemplateCache creation.
type cacheOptions struct {
	name       string
	concurrent bool
}

// defaultCacheOptions returns the default cache options.
func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		name: "templates",
	}
}

// WithConcurrentAccess backs the cache with a sharded, locked store so
// several goroutines may call Get at once. At most one template is still
// built per key.
func WithConcurrentAccess() CacheOption {
	return func(o *cacheOptions) {
		o.concurrent = true
	}
}

// WithCacheName sets the name attached to the cache's log records.
func WithCacheName(name string) CacheOption {
	return func(o *cacheOptions) {
		o.name = name
	}
}
