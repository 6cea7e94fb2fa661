// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

// Arrowhead geometry lies flat in the XY plane facing +z with the edge
// direction along +x. Each shape fits a size x size square.

// Arrow returns a triangle whose tip points along +x.
func Arrow(size float64) (*Mesh, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h := size / 2
	return Polygon([][2]float64{{-h, -h}, {h, 0}, {-h, h}})
}

// InvertedArrow returns a triangle whose tip points along -x.
func InvertedArrow(size float64) (*Mesh, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h := size / 2
	return Polygon([][2]float64{{h, -h}, {h, h}, {-h, 0}})
}

// Diamond returns a square rotated 45 degrees.
func Diamond(size float64) (*Mesh, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h := size / 2
	return Polygon([][2]float64{{h, 0}, {0, h}, {-h, 0}, {0, -h}})
}

// Tee returns a bar across the edge direction, a quarter of size thick.
func Tee(size float64) (*Mesh, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	h, t := size/2, size/8
	return Polygon([][2]float64{{-t, -h}, {t, -h}, {t, h}, {-t, h}})
}
