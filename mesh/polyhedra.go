// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

import "math"

// Tetrahedron returns a regular tetrahedron inscribed in a sphere of the
// given diameter.
func Tetrahedron(diameter float64) (*Mesh, error) {
	verts := []vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	faces := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	return polyhedron(diameter, verts, faces)
}

// Octahedron returns a regular octahedron with vertices on the axes.
func Octahedron(diameter float64) (*Mesh, error) {
	verts := []vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	var faces [][3]int
	for _, x := range []int{0, 1} {
		for _, y := range []int{2, 3} {
			for _, z := range []int{4, 5} {
				faces = append(faces, [3]int{x, y, z})
			}
		}
	}
	return polyhedron(diameter, verts, faces)
}

// Icosahedron returns a regular icosahedron inscribed in a sphere of the
// given diameter.
func Icosahedron(diameter float64) (*Mesh, error) {
	phi := (1 + math.Sqrt(5)) / 2
	verts := []vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return polyhedron(diameter, verts, faces)
}

// polyhedron projects verts onto a sphere of the given diameter and emits
// flat-shaded faces wound outward. The solid must be convex and centered on
// the origin.
func polyhedron(diameter float64, verts []vec3, faces [][3]int) (*Mesh, error) {
	if err := checkSize(diameter); err != nil {
		return nil, err
	}
	r := diameter / 2
	scaled := make([]vec3, len(verts))
	for i, v := range verts {
		scaled[i] = v.normalize().mul(r)
	}

	var b builder
	for _, f := range faces {
		p0, p1, p2 := scaled[f[0]], scaled[f[1]], scaled[f[2]]
		n := p1.sub(p0).cross(p2.sub(p0))
		centroid := p0.add(p1).add(p2)
		if n.dot(centroid) < 0 {
			p1, p2 = p2, p1
		}
		b.flatTriangle(p0, p1, p2)
	}
	return b.result(), nil
}
