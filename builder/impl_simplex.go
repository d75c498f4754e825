// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// impl_simplex.go — Simplex(rank): the abstract simplex family.
//
// Canonical model:
//   • The rank-r elements of the rank-n simplex are the (r+1)-subsets of
//     its n+1 vertices: the empty set is minimal, singletons are vertices,
//     the full set is maximal.
//   • Subelements of a subset are its drop-one subsets, so every section
//     is itself a simplex and the diamond property holds throughout.
//
// Contract:
//   • rank ≥ -1; below → ErrBadRank.
//   • Simplex(-1) is the nullitope, Simplex(0) the point, Simplex(1) the
//     dyad, Simplex(2) the triangle.
//   • Returned structure is sorted and passes core.Validate.
//
// Complexity:
//   • Time and space O(2^rank · rank): one element per vertex subset, each
//     carrying at most rank+1 subelements.
//
// Determinism:
//   • Rank-r elements are numbered by the lexicographic order of their
//     vertex subsets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// Simplex returns the abstract simplex of the given rank: rank+1 vertices,
// every vertex subset an element. It has (rank+1)! flags.
func Simplex(rank core.Rank) (*core.Structure, error) {
	if rank < core.MinRank {
		return nil, fmt.Errorf("builder: Simplex(%s): %w", rank, ErrBadRank)
	}

	s := core.New()
	must(s.PushMin())
	if rank == core.MinRank {
		s.Sort()

		return s, nil
	}

	verts := int(rank) + 1
	must(s.PushVertices(verts))

	// prev maps a subset one level down to its index there. Singleton {v}
	// sits at index v, matching PushVertices numbering.
	prev := make(map[string]int, verts)
	for v := 0; v < verts; v++ {
		prev[subsetKey([]int{v})] = v
	}

	// One level per subset size; the final size is the maximal element.
	drop := make([]int, 0, verts)
	for size := 2; size <= verts; size++ {
		subsets := combinations(verts, size)
		lists := make([][]int, len(subsets))
		next := make(map[string]int, len(subsets))

		for i, set := range subsets {
			next[subsetKey(set)] = i

			subs := make([]int, 0, size)
			for d := 0; d < size; d++ {
				drop = append(drop[:0], set[:d]...)
				drop = append(drop, set[d+1:]...)
				subs = append(subs, prev[subsetKey(drop)])
			}
			lists[i] = subs
		}

		must(s.Push(lists...))
		prev = next
	}
	s.Sort()

	return s, nil
}
