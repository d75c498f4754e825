// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// impl_basic.go — Nullitope, Point, and Dyad: the structures of rank -1,
// 0, and 1.
//
// Canonical model:
//   • Nullitope: the single minimal element and nothing else.
//   • Point:     the minimal element plus one vertex, which is maximal.
//   • Dyad:      two vertices joined by a single maximal edge.
//
// Contract:
//   • No parameters and no errors: each shape is unique at its rank.
//   • Returned structures are sorted and pass core.Validate.
//
// Complexity:
//   • Time and space O(1): constant-size structures.
//
// Determinism:
//   • Vertex numbering is 0-based and fixed.

package builder

import "github.com/katalvlaran/polyflag/core"

// Nullitope returns the rank -1 structure: the minimal element alone. It is
// the only valid structure without flags.
func Nullitope() *core.Structure {
	s := core.New()
	must(s.PushMin())
	s.Sort()

	return s
}

// Point returns the rank 0 structure: one vertex over the minimal element.
// Its single flag is empty.
func Point() *core.Structure {
	s := core.New()
	must(s.PushMin())
	must(s.PushVertices(1))
	s.Sort()

	return s
}

// Dyad returns the rank 1 structure: vertices 0 and 1 joined by one edge.
// Its two flags are mapped onto each other by the rank-0 change.
func Dyad() *core.Structure {
	s := core.New()
	must(s.PushMin())
	must(s.PushVertices(2))
	must(s.PushMax())
	s.Sort()

	return s
}
