// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mesh generates indexed triangle geometry for template shapes.
//
// Every generator is centered on the origin and sized so that its bounding
// box never exceeds the requested size on any axis. Positions and normals
// are flat xyz float32 triples ready for vertex buffer upload; indices are
// counter-clockwise triangles.
//
// Generators are pure: the same arguments always produce an equal Mesh.
// The template cache calls them once per visual configuration and shares the
// result between every instance, so callers must treat a returned Mesh as
// read-only once it is attached to a template.
package mesh
