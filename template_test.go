package graphmesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/graphmesh/mesh"
)

func TestTemplateFreeze(t *testing.T) {
	m, err := mesh.Box(1)
	require.NoError(t, err)
	tpl := NewTemplate(ShapeBox, m, 1)

	mat := BuildMaterial("k", CreateOptions{}, false)
	require.NoError(t, tpl.SetMaterial(mat))
	require.NoError(t, tpl.SetVisibility(2))
	assert.Equal(t, 1.0, tpl.Visibility(), "visibility is clamped")
	require.NoError(t, tpl.SetVisible(false))

	tpl.Freeze()
	tpl.Freeze()
	assert.True(t, tpl.Frozen())

	assert.ErrorIs(t, tpl.SetMaterial(BuildMaterial("other", CreateOptions{}, true)), ErrTemplateFrozen)
	assert.ErrorIs(t, tpl.SetVisibility(0.2), ErrTemplateFrozen)
	assert.ErrorIs(t, tpl.SetVisible(true), ErrTemplateFrozen)

	assert.Same(t, mat, tpl.Material())
	assert.Equal(t, 1.0, tpl.Visibility())
	assert.False(t, tpl.IsVisible())
}

func TestTemplateDrawIndices(t *testing.T) {
	m, err := mesh.Plane(1)
	require.NoError(t, err)

	solid := NewTemplate(ShapePlane, m, 1)
	solid.Freeze()
	assert.Equal(t, m.Indices, solid.DrawIndices())

	wire := NewTemplate(ShapePlane, m, 1)
	require.NoError(t, wire.SetMaterial(BuildMaterial("k", CreateOptions{Effect: &EffectOptions{Wireframe: true}}, false)))
	assert.Equal(t, m.Indices, wire.DrawIndices(), "edges are derived on freeze")
	wire.Freeze()
	assert.Equal(t, mesh.Edges(m), wire.DrawIndices())
	assert.Len(t, wire.DrawIndices(), 10)

	assert.Nil(t, NewTemplate("empty", nil, 1).DrawIndices())
}

func TestTemplateSpawn(t *testing.T) {
	tpl := NewTemplate(ShapeBox, nil, 1)
	tpl.name = "node-style-a-3d"
	tpl.Freeze()

	a := tpl.Spawn()
	b := tpl.Spawn()
	assert.Equal(t, "node-style-a-3d#1", a.Name())
	assert.Equal(t, "node-style-a-3d#2", b.Name())
	assert.Equal(t, 2, tpl.InstanceCount())
	assert.NotSame(t, a, b)
	assert.Same(t, tpl, a.Template())
	assert.True(t, a.Visible)
	assert.Equal(t, One(), a.Scaling)
	assert.True(t, a.WorldMatrix().IsIdentity())
}

func TestInstanceTransformIsIndependent(t *testing.T) {
	tpl := NewTemplate(ShapeBox, nil, 1)
	tpl.Freeze()

	a := tpl.Spawn()
	b := tpl.Spawn()
	a.Position = V3(1, 2, 3)
	a.Visible = false

	assert.Equal(t, Vec3{}, b.Position)
	assert.True(t, b.Visible)
	assert.True(t, a.WorldMatrix().IsTranslation())
	assert.Equal(t, V3(1, 2, 3), a.WorldMatrix().TransformPoint(Vec3{}))
}

func TestTemplateSetVisibilityNaN(t *testing.T) {
	tpl := NewTemplate(ShapeBox, nil, 1)
	require.NoError(t, tpl.SetVisibility(math.NaN()))
	assert.Equal(t, 0.0, tpl.Visibility())

	require.NoError(t, tpl.SetVisibility(-2))
	assert.Equal(t, 0.0, tpl.Visibility())
}

func TestTemplateGeometryAccessors(t *testing.T) {
	m, err := mesh.Box(2)
	require.NoError(t, err)
	tpl := NewTemplate(ShapeBox, m, 2)

	assert.Equal(t, 24, tpl.VertexCount())
	assert.Equal(t, 12, tpl.TriangleCount())
	lo, hi := tpl.Bounds()
	assert.Equal(t, [3]float32{-1, -1, -1}, lo)
	assert.Equal(t, [3]float32{1, 1, 1}, hi)

	empty := NewTemplate("empty", nil, 1)
	assert.Zero(t, empty.VertexCount())
	assert.Zero(t, empty.TriangleCount())
	lo, hi = empty.Bounds()
	assert.Equal(t, [3]float32{}, lo)
	assert.Equal(t, [3]float32{}, hi)
}
