// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mesh

// Edges returns the unique undirected triangle edges of m as line-list index
// pairs, in first-seen order.
func Edges(m *Mesh) []uint32 {
	type edge struct{ a, b uint32 }
	seen := make(map[edge]struct{}, len(m.Indices))
	out := make([]uint32, 0, len(m.Indices)*2)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if a == b {
				continue
			}
			e := edge{a, b}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, a, b)
		}
	}
	return out
}
