// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// impl_hemicube.go — Hemicube(): the cube with antipodal points identified.
//
// Canonical model:
//   • Identifying opposite points of the cube folds its 8 vertices onto 4,
//     its 12 edges onto 6, and its 6 squares onto 3.
//   • The result tiles the projective plane: every pair of vertices spans
//     exactly one edge, and each square omits one of the three perfect
//     matchings of that edge set.
//
// Contract:
//   • No parameters, no errors: the shape is fixed.
//   • Returned structure is sorted and passes core.Validate.
//   • The flag graph admits no consistent parity: this is the canonical
//     non-orientable fixture, and flags.Orientable reports false on it.
//
// Complexity:
//   • Time and space O(1): constant-size structure.
//
// Determinism:
//   • Vertices 0..3; edge numbering is lexicographic over vertex pairs:
//     {0,1},{0,2},{0,3},{1,2},{1,3},{2,3}; faces are listed by ascending
//     edge sets.

package builder

import "github.com/katalvlaran/polyflag/core"

// Hemicube returns the rank 3 hemicube: 4 vertices, 6 edges, 3 square
// faces, 24 flags, and no consistent flag parity.
func Hemicube() *core.Structure {
	s := core.New()
	must(s.PushMin())
	must(s.PushVertices(4))

	// Every vertex pair spans one edge.
	must(s.Push(
		[]int{0, 1}, []int{0, 2}, []int{0, 3},
		[]int{1, 2}, []int{1, 3}, []int{2, 3},
	))

	// Each face is a 4-cycle: the six edges minus one perfect matching.
	must(s.Push(
		[]int{0, 1, 4, 5},
		[]int{0, 2, 3, 5},
		[]int{1, 2, 3, 4},
	))

	must(s.PushMax())
	s.Sort()

	return s
}
