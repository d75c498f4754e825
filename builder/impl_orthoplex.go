// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// impl_orthoplex.go — Orthoplex(rank): the abstract cross-polytope family.
//
// Canonical model:
//   • A proper rank-r element of the rank-n orthoplex picks r+1 distinct
//     axes and a sign for each: vertices are single signed axes, facets
//     use all n axes, and the maximal element closes over every facet.
//   • Subelements drop one signed axis, exactly as simplex faces drop one
//     vertex: every facet is a simplex.
//
// Contract:
//   • rank ≥ -1; below → ErrBadRank.
//   • Orthoplex(-1) is the nullitope, Orthoplex(0) the point,
//     Orthoplex(1) the dyad, Orthoplex(2) the square, Orthoplex(3) the
//     octahedron.
//   • Returned structure is sorted and passes core.Validate.
//
// Complexity:
//   • Time and space O(3^rank · rank): one element per signed axis subset.
//
// Determinism:
//   • Vertex 2a+s is the sign-s end of axis a.
//   • Rank-r elements are numbered by the lexicographic order of their
//     axis sets, then by sign bits counting up over the chosen axes in
//     ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// Orthoplex returns the abstract cross-polytope of the given rank: 2·rank
// vertices in opposite pairs, simplex facets on every choice of signs. It
// has 2^rank · rank! flags.
func Orthoplex(rank core.Rank) (*core.Structure, error) {
	if rank < core.MinRank {
		return nil, fmt.Errorf("builder: Orthoplex(%s): %w", rank, ErrBadRank)
	}
	if rank == core.MinRank {
		return Nullitope(), nil
	}
	if rank == 0 {
		return Point(), nil
	}
	n := int(rank)

	s := core.New()
	must(s.PushMin())
	must(s.PushVertices(2 * n))

	// prev maps a signed axis set one rank down to its index there. A
	// signed axis is encoded as 2·axis+sign, so ascending axes keep the
	// codes ascending. Vertex {2a+s} sits at index 2a+s.
	prev := make(map[string]int, 2*n)
	for v := 0; v < 2*n; v++ {
		prev[subsetKey([]int{v})] = v
	}

	codes := make([]int, 0, n)
	drop := make([]int, 0, n)
	for r := 1; r < n; r++ {
		size := r + 1
		axisSets := combinations(n, size)
		lists := make([][]int, 0, len(axisSets)<<size)
		next := make(map[string]int, len(axisSets)<<size)

		for _, axes := range axisSets {
			// Every sign pattern over the chosen axes is one element.
			for sgn := 0; sgn < 1<<size; sgn++ {
				codes = codes[:0]
				for i, a := range axes {
					codes = append(codes, 2*a+(sgn>>i&1))
				}

				subs := make([]int, 0, size)
				for d := 0; d < size; d++ {
					drop = append(drop[:0], codes[:d]...)
					drop = append(drop, codes[d+1:]...)
					subs = append(subs, prev[subsetKey(drop)])
				}

				next[subsetKey(codes)] = len(lists)
				lists = append(lists, subs)
			}
		}

		must(s.Push(lists...))
		prev = next
	}
	must(s.PushMax())
	s.Sort()

	return s, nil
}
