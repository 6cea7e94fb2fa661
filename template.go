// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphmesh

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/graphmesh/mesh"
)

// Template is the shared master object for one visual configuration.
//
// A template is built once per cache key, hidden (it is never drawn itself)
// and frozen before any instance is spawned from it. After Freeze every
// setter returns ErrTemplateFrozen and leaves the template unchanged.
type Template struct {
	name       string
	shapeType  string
	size       float64
	mesh       *mesh.Mesh
	edges      []uint32
	material   *Material
	visibility float64
	visible    bool
	frozen     bool
	instances  atomic.Int64
}

// NewTemplate creates a visible, unfrozen template without a material.
// Shape creators call it with the geometry they generated.
func NewTemplate(shapeType string, m *mesh.Mesh, size float64) *Template {
	return &Template{
		shapeType:  shapeType,
		size:       size,
		mesh:       m,
		visibility: 1,
		visible:    true,
	}
}

// Name returns the cache key the template is stored under.
// It is empty until the template is cached.
func (t *Template) Name() string { return t.name }

// ShapeType returns the shape type the template was created for.
func (t *Template) ShapeType() string { return t.shapeType }

// Size returns the size the creator built the geometry for.
func (t *Template) Size() float64 { return t.size }

// Mesh returns the shared geometry for upload to a renderer.
// The mesh is read-only: every instance draws from it, so writing to its
// slices changes all of them. Use VertexCount, TriangleCount and Bounds for
// inspection.
func (t *Template) Mesh() *mesh.Mesh { return t.mesh }

// VertexCount returns the number of vertices in the template geometry.
func (t *Template) VertexCount() int {
	if t.mesh == nil {
		return 0
	}
	return t.mesh.VertexCount()
}

// TriangleCount returns the number of triangles in the template geometry.
func (t *Template) TriangleCount() int {
	if t.mesh == nil {
		return 0
	}
	return t.mesh.TriangleCount()
}

// Bounds returns the axis-aligned bounding box of the template geometry.
func (t *Template) Bounds() (lo, hi [3]float32) {
	if t.mesh == nil {
		return lo, hi
	}
	return t.mesh.Bounds()
}

// Material returns the attached material, or nil.
func (t *Template) Material() *Material { return t.material }

// Visibility returns the default opacity instances inherit, in [0, 1].
func (t *Template) Visibility() float64 { return t.visibility }

// IsVisible reports whether the template itself is drawn. Cached templates
// are hidden masters.
func (t *Template) IsVisible() bool { return t.visible }

// Frozen reports whether Freeze has been called.
func (t *Template) Frozen() bool { return t.frozen }

// InstanceCount returns the number of instances spawned so far.
func (t *Template) InstanceCount() int { return int(t.instances.Load()) }

// SetMaterial attaches the material.
func (t *Template) SetMaterial(m *Material) error {
	if t.frozen {
		return ErrTemplateFrozen
	}
	t.material = m
	return nil
}

// SetVisibility sets the default opacity, clamped to [0, 1]. NaN hides
// instances.
func (t *Template) SetVisibility(v float64) error {
	if t.frozen {
		return ErrTemplateFrozen
	}
	t.visibility = clampUnit(v)
	return nil
}

// SetVisible shows or hides the template itself.
func (t *Template) SetVisible(visible bool) error {
	if t.frozen {
		return ErrTemplateFrozen
	}
	t.visible = visible
	return nil
}

// Freeze makes the template immutable. Calling it again has no effect.
// Wireframe materials get their line indices derived here.
func (t *Template) Freeze() {
	if t.frozen {
		return
	}
	if t.material != nil && t.material.Wireframe() && t.mesh != nil {
		t.edges = mesh.Edges(t.mesh)
	}
	t.frozen = true
}

// DrawIndices returns the index buffer matching the material's primitive
// topology: line pairs for wireframe, triangles otherwise.
func (t *Template) DrawIndices() []uint32 {
	if t.edges != nil {
		return t.edges
	}
	if t.mesh == nil {
		return nil
	}
	return t.mesh.Indices
}

// Spawn returns a new visible instance at the origin with unit scaling.
func (t *Template) Spawn() *Instance {
	n := t.instances.Add(1)
	return &Instance{
		name:     fmt.Sprintf("%s#%d", t.name, n),
		template: t,
		Scaling:  One(),
		Visible:  true,
	}
}

// Instance is a lightweight reference to a template with its own transform.
// Instances of one template share its geometry and material.
type Instance struct {
	name     string
	template *Template

	// Position is the translation in world units.
	Position Vec3
	// Rotation holds Euler angles in radians, applied x, then y, then z.
	Rotation Vec3
	// Scaling is the per-axis scale factor.
	Scaling Vec3
	// Visible toggles drawing of this instance only.
	Visible bool
}

// Name returns the instance name, "<template name>#<n>".
func (i *Instance) Name() string { return i.name }

// Template returns the template the instance references.
func (i *Instance) Template() *Template { return i.template }

// Material returns the shared material of the template.
func (i *Instance) Material() *Material { return i.template.material }

// Visibility returns the opacity inherited from the template.
func (i *Instance) Visibility() float64 { return i.template.visibility }

// WorldMatrix returns the instance transform.
func (i *Instance) WorldMatrix() Matrix {
	return Compose(i.Position, i.Rotation, i.Scaling)
}
