// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"go.trai.ch/zerr"
)

// ErrInvalidSize is returned when a generator receives a size that is not a
// positive finite number.
var ErrInvalidSize = zerr.New("mesh: size must be positive and finite")

// Mesh is indexed triangle geometry.
type Mesh struct {
	// Positions holds xyz triples.
	Positions []float32
	// Normals holds one xyz normal per position.
	Normals []float32
	// Indices holds counter-clockwise triangles.
	Indices []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh has zero bounds.
func (m *Mesh) Bounds() (lo, hi [3]float32) {
	if len(m.Positions) < 3 {
		return lo, hi
	}
	copy(lo[:], m.Positions[:3])
	copy(hi[:], m.Positions[:3])
	for i := 3; i+2 < len(m.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := m.Positions[i+axis]
			lo[axis] = min(lo[axis], v)
			hi[axis] = max(hi[axis], v)
		}
	}
	return lo, hi
}

// Extent returns the largest side of the bounding box.
func (m *Mesh) Extent() float32 {
	lo, hi := m.Bounds()
	return max(hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])
}

// checkSize validates a generator size.
func checkSize(size float64) error {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return zerr.With(ErrInvalidSize, "size", size)
	}
	return nil
}

// builder accumulates vertices and triangles.
type builder struct {
	m Mesh
}

// vertex appends a vertex and returns its index.
func (b *builder) vertex(p, n vec3) uint32 {
	idx := uint32(len(b.m.Positions) / 3)
	b.m.Positions = append(b.m.Positions, float32(p.x), float32(p.y), float32(p.z))
	b.m.Normals = append(b.m.Normals, float32(n.x), float32(n.y), float32(n.z))
	return idx
}

// triangle appends one counter-clockwise triangle.
func (b *builder) triangle(i0, i1, i2 uint32) {
	b.m.Indices = append(b.m.Indices, i0, i1, i2)
}

// flatTriangle appends a triangle with its own three vertices sharing the
// face normal.
func (b *builder) flatTriangle(p0, p1, p2 vec3) {
	n := p1.sub(p0).cross(p2.sub(p0)).normalize()
	b.triangle(b.vertex(p0, n), b.vertex(p1, n), b.vertex(p2, n))
}

// result returns the built mesh.
func (b *builder) result() *Mesh {
	m := b.m
	return &m
}

// vec3 is a minimal float64 vector used during generation.
type vec3 struct {
	x, y, z float64
}

func (v vec3) add(w vec3) vec3 {
	return vec3{v.x + w.x, v.y + w.y, v.z + w.z}
}

func (v vec3) sub(w vec3) vec3 {
	return vec3{v.x - w.x, v.y - w.y, v.z - w.z}
}

func (v vec3) mul(s float64) vec3 {
	return vec3{v.x * s, v.y * s, v.z * s}
}

func (v vec3) dot(w vec3) float64 {
	return v.x*w.x + v.y*w.y + v.z*w.z
}

func (v vec3) length() float64 {
	return math.Sqrt(v.dot(v))
}

func (v vec3) cross(w vec3) vec3 {
	return vec3{
		v.y*w.z - v.z*w.y,
		v.z*w.x - v.x*w.z,
		v.x*w.y - v.y*w.x,
	}
}

func (v vec3) normalize() vec3 {
	l := v.length()
	if l == 0 {
		return v
	}
	return v.mul(1 / l)
}

// ring returns n points of a regular polygon of radius r in the XY plane,
// starting at angle rotation.
func ring(n int, r, rotation float64) [][2]float64 {
	angle := 2.0 * math.Pi / float64(n)
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}
