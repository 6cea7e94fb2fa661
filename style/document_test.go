package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/graphmesh"
	"github.com/gogpu/graphmesh/style"
)

const sample = `
mode: 2d
nodeSize: 2
styles:
  server:
    node:
      shape: {type: sphere, size: 3}
      texture:
        color: "#ff8800"
      effect: {wireframe: true}
    arrowhead:
      shape: {type: diamond}
  plain: {}
nodes:
  - {id: api, style: server}
  - {id: db, style: plain}
edges:
  - {source: api, target: db, style: server}
  - {source: db, target: api}
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	doc, err := style.Load(writeDoc(t, sample))
	require.NoError(t, err)

	assert.True(t, doc.Is2D())
	assert.Equal(t, 2.0, doc.NodeSize)
	assert.Len(t, doc.Nodes, 2)
	assert.Len(t, doc.Edges, 2)

	opts, create := doc.NodeElement(doc.Nodes[0])
	assert.Equal(t, graphmesh.ElementOptions{StyleID: "server", Is2D: true, Size: 2}, opts)
	assert.Equal(t, graphmesh.ShapeSphere, create.Shape.Type)
	assert.Equal(t, 3.0, create.Shape.Size)
	assert.Equal(t, "#ff8800", create.Texture.Color.Value)
	assert.True(t, create.Effect.Wireframe)

	_, arrow, ok := doc.ArrowheadElement(doc.Edges[0])
	require.True(t, ok)
	assert.Equal(t, graphmesh.ArrowDiamond, arrow.Shape.Type)

	_, _, ok = doc.ArrowheadElement(doc.Edges[1])
	assert.False(t, ok)
}

func TestParse_Defaults(t *testing.T) {
	doc, err := style.Parse([]byte(sample))
	require.NoError(t, err)

	_, create := doc.NodeElement(doc.Nodes[1])
	require.NotNil(t, create.Shape)
	assert.Equal(t, style.DefaultNodeShape, create.Shape.Type)
	assert.Nil(t, create.Texture)

	doc, err = style.Parse([]byte("nodes: []"))
	require.NoError(t, err)
	assert.Equal(t, style.Mode3D, doc.Mode)
	assert.False(t, doc.Is2D())
	assert.Equal(t, style.DefaultNodeSize, doc.NodeSize)
}

func TestParse_DefaultsArrowheadShape(t *testing.T) {
	doc, err := style.Parse([]byte(`
styles:
  s:
    arrowhead:
      shape: {size: 0.5}
nodes: [{id: a, style: s}, {id: b, style: s}]
edges: [{source: a, target: b, style: s}]
`))
	require.NoError(t, err)

	_, arrow, ok := doc.ArrowheadElement(doc.Edges[0])
	require.True(t, ok)
	assert.Equal(t, style.DefaultArrowheadShape, arrow.Shape.Type)
	assert.Equal(t, 0.5, arrow.Shape.Size)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
		detail  string
	}{
		{
			name:    "invalid yaml",
			content: "nodes: [",
			want:    style.ErrParseFailed,
		},
		{
			name:    "invalid mode",
			content: "mode: 4d",
			want:    style.ErrInvalidMode,
		},
		{
			name:    "negative size",
			content: "nodeSize: -1",
			want:    style.ErrInvalidNodeSize,
		},
		{
			name:    "unknown node style",
			content: "nodes: [{id: a, style: ghost}]",
			want:    style.ErrUnknownStyle,
		},
		{
			name:    "duplicate node",
			content: "styles: {s: {}}\nnodes: [{id: a, style: s}, {id: a, style: s}]",
			want:    style.ErrDuplicateNode,
		},
		{
			name:    "empty node id",
			content: "styles: {s: {}}\nnodes: [{style: s}]",
			want:    style.ErrEmptyNodeID,
		},
		{
			name:    "unknown edge target",
			content: "styles: {s: {}}\nnodes: [{id: a, style: s}]\nedges: [{source: a, target: b}]",
			want:    style.ErrUnknownNode,
		},
		{
			name:    "unknown edge style",
			content: "styles: {s: {}}\nnodes: [{id: a, style: s}]\nedges: [{source: a, target: a, style: ghost}]",
			want:    style.ErrUnknownStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := style.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
			assert.Nil(t, doc)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := style.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, style.ErrReadFailed.Error())
}
