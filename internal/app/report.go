package app

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/graphmesh"
	"github.com/gogpu/graphmesh/style"
)

// TemplateUsage describes one cached template.
type TemplateUsage struct {
	Key       string
	Shape     string
	Size      float64
	Vertices  int
	Instances int
	Lighting  string
	Wireframe bool
	// Topology is the primitive topology the template is drawn with.
	Topology string
	// Indices is the length of the index buffer for that topology.
	Indices int
	// Blend is "premultiplied" for translucent materials, "opaque" otherwise.
	Blend string
}

// Report summarizes a populated scene.
type Report struct {
	Mode       string
	Nodes      int
	Edges      int
	Arrowheads int
	Templates  []TemplateUsage
	Cache      graphmesh.CacheStats
}

// NewReport builds a report from a document and its populated scene.
// Templates are listed in key order.
func NewReport(doc *style.Document, s *Scene) *Report {
	r := &Report{
		Mode:       doc.Mode,
		Nodes:      len(s.Nodes),
		Edges:      len(doc.Edges),
		Arrowheads: s.ArrowheadCount(),
		Cache:      s.Cache.Stats(),
	}

	for _, key := range s.Cache.Keys() {
		tpl, ok := s.Cache.Template(key)
		if !ok {
			continue
		}
		u := TemplateUsage{
			Key:       key,
			Shape:     tpl.ShapeType(),
			Size:      tpl.Size(),
			Instances: tpl.InstanceCount(),
		}
		u.Vertices = tpl.VertexCount()
		u.Indices = len(tpl.DrawIndices())
		if mat := tpl.Material(); mat != nil {
			u.Lighting = mat.Lighting().String()
			u.Wireframe = mat.Wireframe()
			u.Topology = topologyName(mat.PrimitiveState().Topology)
			u.Blend = "opaque"
			if mat.BlendState() != nil {
				u.Blend = "premultiplied"
			}
		}
		r.Templates = append(r.Templates, u)
	}
	return r
}

func topologyName(t gputypes.PrimitiveTopology) string {
	switch t {
	case gputypes.PrimitiveTopologyTriangleList:
		return "triangle-list"
	case gputypes.PrimitiveTopologyLineList:
		return "line-list"
	default:
		return fmt.Sprint(t)
	}
}
