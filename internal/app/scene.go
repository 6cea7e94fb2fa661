package app

import "github.com/gogpu/graphmesh"

// Scene is a populated graph.
type Scene struct {
	// Cache holds the templates shared by the instances below.
	Cache *graphmesh.TemplateCache
	// Nodes holds one instance per document node, in document order.
	Nodes []*graphmesh.Instance
	// Arrowheads holds one entry per document edge. Edges without a style
	// have a nil entry.
	Arrowheads []*graphmesh.Instance
}

// ArrowheadCount returns the number of non-nil arrowheads.
func (s *Scene) ArrowheadCount() int {
	n := 0
	for _, a := range s.Arrowheads {
		if a != nil {
			n++
		}
	}
	return n
}
