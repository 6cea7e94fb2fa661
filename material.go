// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphmesh

import "github.com/gogpu/gputypes"

// LightingMode selects how a material responds to scene lights.
type LightingMode uint8

const (
	// LightingLit shades the diffuse color with scene lights (3D).
	LightingLit LightingMode = iota
	// LightingUnlit ignores lights and shows the emissive color flat (2D).
	LightingUnlit
)

// String returns the mode name.
func (m LightingMode) String() string {
	switch m {
	case LightingLit:
		return "lit"
	case LightingUnlit:
		return "unlit"
	default:
		return "unknown"
	}
}

// Material describes how a template's surface is drawn.
//
// A Material has no setters: BuildMaterial fixes every property and the
// result is shared by every instance of its template.
type Material struct {
	name      string
	lighting  LightingMode
	diffuse   RGBA
	emissive  RGBA
	primary   RGBA
	hasColor  bool
	wireframe bool
	alpha     float64
}

// BuildMaterial builds the material for a template from its create options.
//
// When the texture color resolves, 2D mode makes the material unlit with the
// color on its emissive channel so it reads flat under any lighting; 3D mode
// keeps it lit with the color on its diffuse channel. Without a color the
// material stays lit with a white diffuse channel. Wireframe defaults to
// false. An explicit opacity in the color becomes the material alpha.
func BuildMaterial(name string, opts CreateOptions, is2D bool) *Material {
	m := &Material{
		name:     name,
		lighting: LightingLit,
		diffuse:  White,
		emissive: Black,
		primary:  White,
		alpha:    1,
	}

	if nc, ok := ResolveColor(opts.textureColor()); ok {
		if is2D {
			m.lighting = LightingUnlit
			m.emissive = nc.Color
		} else {
			m.diffuse = nc.Color
		}
		m.primary = nc.Color
		m.hasColor = true
		if nc.HasOpacity {
			m.alpha = nc.Opacity
		}
	}

	if opts.Effect != nil {
		m.wireframe = opts.Effect.Wireframe
	}
	return m
}

// Name returns the material name.
func (m *Material) Name() string { return m.name }

// Lighting returns the lighting mode.
func (m *Material) Lighting() LightingMode { return m.lighting }

// DiffuseColor returns the color lights act upon.
func (m *Material) DiffuseColor() RGBA { return m.diffuse }

// EmissiveColor returns the self-illuminated ("glow") color.
func (m *Material) EmissiveColor() RGBA { return m.emissive }

// PrimaryColor returns the resolved style color and whether one was set.
func (m *Material) PrimaryColor() (RGBA, bool) { return m.primary, m.hasColor }

// Wireframe reports whether the template is drawn as edges only.
func (m *Material) Wireframe() bool { return m.wireframe }

// Alpha returns the material opacity in [0, 1].
func (m *Material) Alpha() float64 { return m.alpha }

// Translucent reports whether the material needs blending.
func (m *Material) Translucent() bool { return m.alpha < 1 }

// GPUColor returns the color a shader consumes, in linear space with the
// material alpha: the emissive color for unlit materials, the diffuse color
// otherwise.
func (m *Material) GPUColor() gputypes.Color {
	c := m.diffuse
	if m.lighting == LightingUnlit {
		c = m.emissive
	}
	c.A = m.alpha
	l := c.Linear()
	return gputypes.Color{R: l.R, G: l.G, B: l.B, A: l.A}
}

// PrimitiveState returns the rasterizer state for the material.
// Wireframe materials draw line lists over the template's edge indices.
func (m *Material) PrimitiveState() gputypes.PrimitiveState {
	topology := gputypes.PrimitiveTopologyTriangleList
	if m.wireframe {
		topology = gputypes.PrimitiveTopologyLineList
	}
	return gputypes.PrimitiveState{
		Topology: topology,
		CullMode: gputypes.CullModeNone,
	}
}

// BlendState returns premultiplied alpha blending for translucent materials
// and nil for opaque ones.
func (m *Material) BlendState() *gputypes.BlendState {
	if !m.Translucent() {
		return nil
	}
	blend := gputypes.BlendStatePremultiplied()
	return &blend
}
