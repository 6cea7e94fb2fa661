// Package app populates graph scenes from style documents.
package app

import (
	"context"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/graphmesh"
	"github.com/gogpu/graphmesh/style"
)

// Options controls how a scene is populated.
type Options struct {
	// Parallel is the number of worker goroutines. Values below 2 populate
	// sequentially on a single-goroutine cache.
	Parallel int
}

// App creates scene elements through a node and an arrowhead factory.
type App struct {
	nodes      *graphmesh.ElementFactory
	arrowheads *graphmesh.ElementFactory
}

// New creates an App drawing shapes from the given registries.
func New(nodeShapes, arrowheadShapes *graphmesh.ShapeRegistry) *App {
	return &App{
		nodes:      graphmesh.NewNodeMeshFactory(nodeShapes),
		arrowheads: graphmesh.NewArrowheadFactory(arrowheadShapes),
	}
}

// NewDefault creates an App with the built-in shapes and arrowheads.
func NewDefault() *App {
	return New(graphmesh.BuiltinShapes(), graphmesh.BuiltinArrowheads())
}

// ShapeList names the registered creators of both factories.
type ShapeList struct {
	Nodes      []string
	Arrowheads []string
}

// Shapes returns the registered shape types in sorted order.
func (a *App) Shapes() ShapeList {
	return ShapeList{
		Nodes:      a.nodes.Shapes().Types(),
		Arrowheads: a.arrowheads.Shapes().Types(),
	}
}

// Stats loads the document at path, populates it and reports template use.
func (a *App) Stats(ctx context.Context, path string, opts Options) (*Report, error) {
	doc, err := style.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load style document")
	}

	scene, err := a.Populate(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	return NewReport(doc, scene), nil
}

// Populate creates an instance for every node and every styled edge of doc.
// Nodes are laid out on a circle; arrowheads sit on the target node's
// boundary pointing along the edge.
func (a *App) Populate(ctx context.Context, doc *style.Document, opts Options) (*Scene, error) {
	parallel := opts.Parallel > 1

	cacheOpts := []graphmesh.CacheOption{graphmesh.WithCacheName("scene")}
	if parallel {
		cacheOpts = append(cacheOpts, graphmesh.WithConcurrentAccess())
	}

	s := &Scene{
		Cache:      graphmesh.NewTemplateCache(cacheOpts...),
		Nodes:      make([]*graphmesh.Instance, len(doc.Nodes)),
		Arrowheads: make([]*graphmesh.Instance, len(doc.Edges)),
	}

	positions := circleLayout(len(doc.Nodes), doc.NodeSize)
	index := make(map[string]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		index[n.ID] = i
	}

	createNode := func(i int) error {
		n := doc.Nodes[i]
		elem, create := doc.NodeElement(n)
		inst, err := a.nodes.Create(s.Cache, elem, create)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create node"), "node", n.ID)
		}
		inst.Position = positions[i]
		s.Nodes[i] = inst
		return nil
	}

	createArrowhead := func(i int) error {
		e := doc.Edges[i]
		elem, create, ok := doc.ArrowheadElement(e)
		if !ok {
			return nil
		}
		inst, err := a.arrowheads.Create(s.Cache, elem, create)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create arrowhead"), "edge", e.Source+"->"+e.Target)
		}
		inst.Position, inst.Rotation = arrowheadPlacement(
			positions[index[e.Source]], positions[index[e.Target]], doc.NodeSize)
		s.Arrowheads[i] = inst
		return nil
	}

	if !parallel {
		for i := range doc.Nodes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := createNode(i); err != nil {
				return nil, err
			}
		}
		for i := range doc.Edges {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := createArrowhead(i); err != nil {
				return nil, err
			}
		}
		return s, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i := range doc.Nodes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return createNode(i)
		})
	}
	for i := range doc.Edges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return createArrowhead(i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}
