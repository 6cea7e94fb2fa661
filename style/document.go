package style

import (
	"math"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/graphmesh"
)

// Rendering modes.
const (
	Mode2D = "2d"
	Mode3D = "3d"
)

// DefaultNodeSize is used when a document sets no nodeSize.
const DefaultNodeSize = 1.0

// Default shape types filled in for styles that name none.
const (
	DefaultNodeShape      = graphmesh.ShapeBox
	DefaultArrowheadShape = graphmesh.ArrowNormal
)

// Document is a parsed and validated style document.
type Document struct {
	Mode     string           `yaml:"mode"`
	NodeSize float64          `yaml:"nodeSize"`
	Styles   map[string]Style `yaml:"styles"`
	Nodes    []Node           `yaml:"nodes"`
	Edges    []Edge           `yaml:"edges"`
}

// Style holds the create options for the elements drawn with one style id.
type Style struct {
	Node      *graphmesh.CreateOptions `yaml:"node"`
	Arrowhead *graphmesh.CreateOptions `yaml:"arrowhead"`
}

// Node is a graph node.
type Node struct {
	ID    string `yaml:"id"`
	Style string `yaml:"style"`
}

// Edge is a directed graph edge. Edges with a style get an arrowhead at
// their target.
type Edge struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Style  string `yaml:"style"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrReadFailed.Error()), "path", path)
	}
	return Parse(data)
}

// Parse parses a document, fills in defaults and validates references.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, ErrParseFailed.Error())
	}
	if err := doc.normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Is2D reports whether the document renders flat.
func (d *Document) Is2D() bool {
	return d.Mode == Mode2D
}

// NodeElement returns the element and create options for node n.
func (d *Document) NodeElement(n Node) (graphmesh.ElementOptions, graphmesh.CreateOptions) {
	return d.element(n.Style), *d.Styles[n.Style].Node
}

// ArrowheadElement returns the element and create options for the arrowhead
// of e. ok is false for edges drawn without one.
func (d *Document) ArrowheadElement(e Edge) (opts graphmesh.ElementOptions, create graphmesh.CreateOptions, ok bool) {
	if e.Style == "" {
		return opts, create, false
	}
	return d.element(e.Style), *d.Styles[e.Style].Arrowhead, true
}

func (d *Document) element(styleID string) graphmesh.ElementOptions {
	return graphmesh.ElementOptions{
		StyleID: styleID,
		Is2D:    d.Is2D(),
		Size:    d.NodeSize,
	}
}

// normalize applies defaults and checks every reference.
func (d *Document) normalize() error {
	switch d.Mode {
	case "":
		d.Mode = Mode3D
	case Mode2D, Mode3D:
	default:
		return zerr.With(ErrInvalidMode, "mode", d.Mode)
	}

	if d.NodeSize == 0 {
		d.NodeSize = DefaultNodeSize
	}
	if d.NodeSize < 0 || math.IsNaN(d.NodeSize) || math.IsInf(d.NodeSize, 0) {
		return zerr.With(ErrInvalidNodeSize, "nodeSize", d.NodeSize)
	}

	if d.Styles == nil {
		d.Styles = make(map[string]Style)
	}
	for id, s := range d.Styles {
		s.Node = withDefaultShape(s.Node, DefaultNodeShape)
		s.Arrowhead = withDefaultShape(s.Arrowhead, DefaultArrowheadShape)
		d.Styles[id] = s
	}

	ids := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			return ErrEmptyNodeID
		}
		if ids[n.ID] {
			return zerr.With(ErrDuplicateNode, "node", n.ID)
		}
		ids[n.ID] = true
		if _, ok := d.Styles[n.Style]; !ok {
			return zerr.With(zerr.With(ErrUnknownStyle, "style", n.Style), "node", n.ID)
		}
	}

	for _, e := range d.Edges {
		for _, end := range []string{e.Source, e.Target} {
			if !ids[end] {
				return zerr.With(ErrUnknownNode, "node", end)
			}
		}
		if e.Style == "" {
			continue
		}
		if _, ok := d.Styles[e.Style]; !ok {
			return zerr.With(zerr.With(ErrUnknownStyle, "style", e.Style), "edge", e.Source+"->"+e.Target)
		}
	}
	return nil
}

// withDefaultShape returns a copy of opts whose shape type is set.
func withDefaultShape(opts *graphmesh.CreateOptions, shapeType string) *graphmesh.CreateOptions {
	var out graphmesh.CreateOptions
	if opts != nil {
		out = *opts
	}
	shape := graphmesh.ShapeOptions{Type: shapeType}
	if out.Shape != nil {
		shape = *out.Shape
		if shape.Type == "" {
			shape.Type = shapeType
		}
	}
	out.Shape = &shape
	return &out
}
