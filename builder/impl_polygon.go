// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// impl_polygon.go — Polygon(n): the abstract n-gon.
//
// Canonical model:
//   • Rank 2: n vertices, n edges, one maximal face.
//   • Edge i joins vertices i and (i+1) mod n, so edges follow the
//     perimeter in vertex order.
//
// Contract:
//   • n ≥ 2; smaller n → ErrFewSides. The digon (n = 2) is a valid
//     abstract polygon: two distinct edges sharing both vertices.
//   • Returned structure is sorted and passes core.Validate.
//
// Complexity:
//   • Time O(n), space O(n).
//
// Determinism:
//   • Vertex and edge numbering follow the perimeter from 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// Polygon returns the abstract n-gon: the rank 2 structure whose vertices
// and edges alternate around a single cycle. It has 2n flags.
func Polygon(n int) (*core.Structure, error) {
	if n < 2 {
		return nil, fmt.Errorf("builder: Polygon(%d): %w", n, ErrFewSides)
	}

	// 1. Perimeter edges: edge i covers vertices {i, i+1 mod n}.
	edges := make([][]int, n)
	for i := 0; i < n; i++ {
		edges[i] = []int{i, (i + 1) % n}
	}

	// 2. Assemble bottom-up and close with the single face.
	s := core.New()
	must(s.PushMin())
	must(s.PushVertices(n))
	must(s.Push(edges...))
	must(s.PushMax())
	s.Sort()

	return s, nil
}
