// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import "math"

// Default tessellation levels for curved primitives.
const (
	// DefaultSegments is the number of latitude rings of a sphere.
	DefaultSegments = 16

	// DefaultTessellation is the number of radial subdivisions of cylinders,
	// cones, tori and discs.
	DefaultTessellation = 24
)

// Box returns an axis-aligned cube with edge length size.
// Each face has its own four vertices so normals stay flat.
func Box(size float64) (*Mesh, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h := size / 2

	// n, u, v with u x v == n so the corner order is counter-clockwise
	// seen from outside.
	faces := [6][3]vec3{
		{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	}

	var b builder
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		c := n.mul(h)
		i0 := b.vertex(c.sub(u.mul(h)).sub(v.mul(h)), n)
		i1 := b.vertex(c.add(u.mul(h)).sub(v.mul(h)), n)
		i2 := b.vertex(c.add(u.mul(h)).add(v.mul(h)), n)
		i3 := b.vertex(c.sub(u.mul(h)).add(v.mul(h)), n)
		b.triangle(i0, i1, i2)
		b.triangle(i0, i2, i3)
	}
	return b.result(), nil
}

// Sphere returns a UV sphere of the given diameter with segments latitude
// rings and twice as many longitude sectors. segments below 3 is raised to 3.
func Sphere(diameter float64, segments int) (*Mesh, error) {
	if err := checkSize(diameter); err != nil {
		return nil, err
	}
	rings := max(segments, 3)
	// Even ring/sector counts put vertices on the equator and both x poles.
	if rings%2 == 1 {
		rings++
	}
	sectors := rings * 2
	r := diameter / 2

	var b builder
	for i := 0; i <= rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j <= sectors; j++ {
			theta := 2 * math.Pi * float64(j) / float64(sectors)
			sinTheta, cosTheta := math.Sincos(theta)
			n := vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			b.vertex(n.mul(r), n)
		}
	}

	stride := uint32(sectors + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sectors; j++ {
			a := uint32(i)*stride + uint32(j)
			c := a + stride
			if i != 0 {
				b.triangle(a, a+1, c)
			}
			if i != rings-1 {
				b.triangle(a+1, c+1, c)
			}
		}
	}
	return b.result(), nil
}

// Cylinder returns a capped frustum along the y axis. A zero diameter on
// either end collapses that end to a point and omits its cap.
func Cylinder(height, diameterTop, diameterBottom float64, tessellation int) (*Mesh, error) {
	if err := checkSize(height); err != nil {
		return nil, err
	}
	if diameterTop < 0 || diameterBottom < 0 || (diameterTop == 0 && diameterBottom == 0) {
		return nil, checkSize(0)
	}
	tess := max(tessellation, 3)
	hh := height / 2
	rt, rb := diameterTop/2, diameterBottom/2
	slope := (rb - rt) / height

	var b builder

	// Side wall: pairs of top/bottom vertices per sector.
	for j := 0; j <= tess; j++ {
		theta := 2 * math.Pi * float64(j) / float64(tess)
		sin, cos := math.Sincos(theta)
		n := vec3{cos, slope, sin}.normalize()
		b.vertex(vec3{rt * cos, hh, rt * sin}, n)
		b.vertex(vec3{rb * cos, -hh, rb * sin}, n)
	}
	for j := 0; j < tess; j++ {
		top := uint32(j * 2)
		bottom := top + 1
		if rt > 0 {
			b.triangle(top, top+2, bottom)
		}
		if rb > 0 {
			b.triangle(top+2, bottom+2, bottom)
		}
	}

	if rt > 0 {
		b.cap(tess, rt, hh, true)
	}
	if rb > 0 {
		b.cap(tess, rb, -hh, false)
	}
	return b.result(), nil
}

// cap appends a flat disc at height y facing +y when up is set, -y otherwise.
func (b *builder) cap(tess int, r, y float64, up bool) {
	n := vec3{0, -1, 0}
	if up {
		n = vec3{0, 1, 0}
	}
	center := b.vertex(vec3{0, y, 0}, n)
	first := center + 1
	for _, p := range ring(tess, r, 0) {
		b.vertex(vec3{p[0], y, p[1]}, n)
	}
	for j := 0; j < tess; j++ {
		cur := first + uint32(j)
		next := first + uint32((j+1)%tess)
		if up {
			b.triangle(center, next, cur)
		} else {
			b.triangle(center, cur, next)
		}
	}
}

// Cone returns a cone of the given height and base diameter, apex up.
func Cone(height, diameter float64, tessellation int) (*Mesh, error) {
	return Cylinder(height, 0, diameter, tessellation)
}

// Torus returns a ring in the XZ plane. The outer extent is
// diameter + thickness.
func Torus(diameter, thickness float64, tessellation int) (*Mesh, error) {
	if err := checkSize(diameter); err != nil {
		return nil, err
	}
	if err := checkSize(thickness); err != nil {
		return nil, err
	}
	tess := max(tessellation, 3)
	major, minor := diameter/2, thickness/2

	var b builder
	for i := 0; i <= tess; i++ {
		theta := 2 * math.Pi * float64(i) / float64(tess)
		sinTheta, cosTheta := math.Sincos(theta)
		center := vec3{major * cosTheta, 0, major * sinTheta}
		for j := 0; j <= tess; j++ {
			phi := 2 * math.Pi * float64(j) / float64(tess)
			sinPhi, cosPhi := math.Sincos(phi)
			n := vec3{cosPhi * cosTheta, sinPhi, cosPhi * sinTheta}
			b.vertex(center.add(n.mul(minor)), n)
		}
	}

	stride := uint32(tess + 1)
	for i := 0; i < tess; i++ {
		for j := 0; j < tess; j++ {
			a := uint32(i)*stride + uint32(j)
			c := a + stride
			b.triangle(a, a+1, c)
			b.triangle(a+1, c+1, c)
		}
	}
	return b.result(), nil
}

// Plane returns a square of edge size in the XY plane facing +z.
func Plane(size float64) (*Mesh, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h := size / 2
	return Polygon([][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}})
}

// Disc returns a filled regular polygon of the given diameter in the XY
// plane facing +z.
func Disc(diameter float64, tessellation int) (*Mesh, error) {
	if err := checkSize(diameter); err != nil {
		return nil, err
	}
	return Polygon(ring(max(tessellation, 3), diameter/2, 0))
}

// Polygon triangulates a convex polygon given counter-clockwise in the XY
// plane as a fan from its first point. Fewer than three points is an error.
func Polygon(points [][2]float64) (*Mesh, error) {
	if len(points) < 3 {
		return nil, checkSize(0)
	}
	n := vec3{0, 0, 1}

	var b builder
	for _, p := range points {
		b.vertex(vec3{p[0], p[1], 0}, n)
	}
	for i := 1; i+1 < len(points); i++ {
		b.triangle(0, uint32(i), uint32(i+1))
	}
	return b.result(), nil
}
