// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import (
	"math"
	"strings"
	"testing"
)

type generator struct {
	name   string
	build  func(size float64) (*Mesh, error)
	closed bool // convex solid centered on the origin
}

func generators() []generator {
	return []generator{
		{"box", Box, true},
		{"sphere", func(s float64) (*Mesh, error) { return Sphere(s, DefaultSegments) }, true},
		{"cylinder", func(s float64) (*Mesh, error) { return Cylinder(s, s, s, DefaultTessellation) }, true},
		{"cone", func(s float64) (*Mesh, error) { return Cone(s, s, DefaultTessellation) }, true},
		{"torus", func(s float64) (*Mesh, error) { return Torus(s*0.7, s*0.3, DefaultTessellation) }, false},
		{"tetrahedron", Tetrahedron, true},
		{"octahedron", Octahedron, true},
		{"icosahedron", Icosahedron, true},
		{"plane", Plane, false},
		{"disc", func(s float64) (*Mesh, error) { return Disc(s, DefaultTessellation) }, false},
		{"arrow", Arrow, false},
		{"inverted", InvertedArrow, false},
		{"diamond", Diamond, false},
		{"tee", Tee, false},
	}
}

func TestGeneratorsFitSize(t *testing.T) {
	const size = 3.0
	for _, g := range generators() {
		t.Run(g.name, func(t *testing.T) {
			m, err := g.build(size)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.VertexCount() == 0 || m.TriangleCount() == 0 {
				t.Fatalf("empty mesh: %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
			}
			if ext := m.Extent(); float64(ext) > size+1e-4 {
				t.Errorf("Extent() = %v, exceeds %v", ext, size)
			}
			if len(m.Normals) != len(m.Positions) {
				t.Errorf("normals/positions mismatch: %d vs %d", len(m.Normals), len(m.Positions))
			}
			for _, idx := range m.Indices {
				if int(idx) >= m.VertexCount() {
					t.Fatalf("index %d out of range (%d vertices)", idx, m.VertexCount())
				}
			}
		})
	}
}

func TestExactExtent(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Mesh, error)
		want  float64
	}{
		{"box", func() (*Mesh, error) { return Box(2) }, 2},
		{"sphere", func() (*Mesh, error) { return Sphere(2, 7) }, 2},
		{"plane", func() (*Mesh, error) { return Plane(4) }, 4},
		{"torus", func() (*Mesh, error) { return Torus(1.4, 0.6, 32) }, 2},
		{"octahedron", func() (*Mesh, error) { return Octahedron(5) }, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := float64(m.Extent()); math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Extent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosedSolidsWindOutward(t *testing.T) {
	for _, g := range generators() {
		if !g.closed {
			continue
		}
		t.Run(g.name, func(t *testing.T) {
			m, err := g.build(2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := 0; i < len(m.Indices); i += 3 {
				p0, p1, p2 := position(m, m.Indices[i]), position(m, m.Indices[i+1]), position(m, m.Indices[i+2])
				n := p1.sub(p0).cross(p2.sub(p0))
				if n.length() < 1e-9 {
					continue
				}
				if n.dot(p0.add(p1).add(p2)) <= 0 {
					t.Fatalf("triangle %d faces inward", i/3)
				}
			}
		})
	}
}

func TestNormalsAreUnitLength(t *testing.T) {
	m, err := Sphere(1, DefaultSegments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		n := vec3{float64(m.Normals[i]), float64(m.Normals[i+1]), float64(m.Normals[i+2])}
		if math.Abs(n.length()-1) > 1e-5 {
			t.Fatalf("normal %d has length %v", i/3, n.length())
		}
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		for _, g := range generators() {
			if _, err := g.build(size); err == nil {
				t.Errorf("%s(%v): expected error", g.name, size)
			} else if !strings.Contains(err.Error(), ErrInvalidSize.Error()) {
				t.Errorf("%s(%v): unexpected error %v", g.name, size, err)
			}
		}
	}
}

func TestPolygonNeedsThreePoints(t *testing.T) {
	if _, err := Polygon([][2]float64{{0, 0}, {1, 0}}); err == nil {
		t.Error("expected error for two points")
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	a, _ := Icosahedron(1)
	b, _ := Icosahedron(1)
	if len(a.Positions) != len(b.Positions) {
		t.Fatal("vertex counts differ")
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("position %d differs", i)
		}
	}
}

func position(m *Mesh, idx uint32) vec3 {
	i := idx * 3
	return vec3{float64(m.Positions[i]), float64(m.Positions[i+1]), float64(m.Positions[i+2])}
}

func TestEdges(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Mesh, error)
		want  int
	}{
		// two triangles sharing the diagonal
		{"plane", func() (*Mesh, error) { return Plane(1) }, 5},
		// per-face vertices: 4 borders plus a diagonal on each face
		{"box", func() (*Mesh, error) { return Box(1) }, 30},
		{"arrow", func() (*Mesh, error) { return Arrow(1) }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			edges := Edges(m)
			if len(edges)%2 != 0 {
				t.Fatalf("odd index count %d", len(edges))
			}
			if got := len(edges) / 2; got != tt.want {
				t.Errorf("Edges() has %d edges, want %d", got, tt.want)
			}
		})
	}
}
