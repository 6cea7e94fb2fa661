// Package graphmesh turns graph element styles into shared, instanced
// renderable geometry.
//
// # Overview
//
// Thousands of nodes and arrowheads in a graph usually share a handful of
// styles. Building geometry and compiling a material per element is wasted
// work, so graphmesh builds one hidden master Template per visual
// configuration and hands each element a cheap Instance of it with its own
// transform.
//
// # Quick Start
//
//	cache := graphmesh.NewTemplateCache()
//	nodes := graphmesh.NewNodeMeshFactory(graphmesh.BuiltinShapes())
//
//	inst, err := nodes.Create(cache,
//	    graphmesh.ElementOptions{StyleID: "server", Size: 1},
//	    graphmesh.CreateOptions{
//	        Shape:   &graphmesh.ShapeOptions{Type: graphmesh.ShapeBox},
//	        Texture: &graphmesh.TextureOptions{Color: graphmesh.HexColor("#3366ff")},
//	    })
//	if err != nil {
//	    return err
//	}
//	inst.Position = graphmesh.V3(4, 0, 0)
//
// # Architecture
//
// The package is organized into:
//   - TemplateCache: key to template memoization with hit/miss counters
//   - ShapeRegistry: named ShapeCreator functions, open for extension
//   - BuildMaterial and ResolveColor: color parsing and the lit (3D) or
//     unlit (2D) material a template is decorated with
//   - ElementFactory: computes the cache key, resolves the shape and
//     material on a miss, and returns an Instance
//   - mesh: geometry generators behind the built-in creators
//   - cache: the generic memoizing stores the TemplateCache is built on
//
// # Cache Keys
//
// A factory keys templates as "<kind>-style-<styleID>-<2d|3d>". Elements
// with equal keys share a template; the mode suffix separates the lit and
// unlit variants of one style.
//
// # Concurrency
//
// A TemplateCache created without options is for one goroutine, typically
// the render loop, and takes no locks. WithConcurrentAccess switches to a
// sharded store that keeps the one-build-per-key guarantee under
// concurrent Get calls.
package graphmesh

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
