// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// impl_hypercube.go — Hypercube(rank): the abstract hypercube family.
//
// Canonical model:
//   • A rank-r face of the rank-n hypercube fixes n-r axes to 0 or 1 and
//     leaves r axes free: vertices fix every axis, the maximal element
//     leaves every axis free.
//   • Subelements of a face are the 2r faces obtained by fixing one free
//     axis each way.
//
// Contract:
//   • rank ≥ -1; below → ErrBadRank.
//   • Hypercube(-1) is the nullitope, Hypercube(0) the point,
//     Hypercube(1) the dyad, Hypercube(2) the square, Hypercube(3) the
//     cube.
//   • Returned structure is sorted and passes core.Validate.
//
// Complexity:
//   • Time and space O(3^rank · rank): one element per face vector, each
//     carrying at most 2·rank subelements.
//
// Determinism:
//   • Vertex v's coordinates are the binary digits of v, axis a at bit a.
//   • Rank-r faces are numbered by increasing free-axis mask, then by the
//     fixed coordinates counting up over the fixed axes in ascending
//     order.

package builder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/polyflag/core"
)

// faceID identifies a hypercube face: the set of free axes and the values
// of the fixed ones. Coordinate bits are only set on fixed axes.
type faceID struct {
	free   uint64
	coords uint64
}

// Hypercube returns the abstract hypercube of the given rank: 2^rank
// vertices, faces spanning every subset of axes. It has 2^rank · rank!
// flags.
func Hypercube(rank core.Rank) (*core.Structure, error) {
	if rank < core.MinRank {
		return nil, fmt.Errorf("builder: Hypercube(%s): %w", rank, ErrBadRank)
	}
	if rank == core.MinRank {
		return Nullitope(), nil
	}
	n := int(rank)

	s := core.New()
	must(s.PushMin())
	must(s.PushVertices(1 << n))

	// prev maps a face one rank down to its index there. Vertex numbering
	// coincides with its coordinate bits.
	prev := make(map[faceID]int, 1<<n)
	for v := 0; v < 1<<n; v++ {
		prev[faceID{free: 0, coords: uint64(v)}] = v
	}

	fixed := make([]int, 0, n)
	for r := 1; r <= n; r++ {
		var lists [][]int
		next := make(map[faceID]int)

		for mask := uint64(0); mask < 1<<n; mask++ {
			if bits.OnesCount64(mask) != r {
				continue
			}

			// 1. The fixed axes of this mask, ascending.
			fixed = fixed[:0]
			for a := 0; a < n; a++ {
				if mask>>a&1 == 0 {
					fixed = append(fixed, a)
				}
			}

			// 2. Every assignment of the fixed axes is one face.
			for c := 0; c < 1<<len(fixed); c++ {
				var coords uint64
				for i, a := range fixed {
					if c>>i&1 == 1 {
						coords |= 1 << a
					}
				}

				// 3. Children fix one free axis each way.
				subs := make([]int, 0, 2*r)
				for a := 0; a < n; a++ {
					if mask>>a&1 == 0 {
						continue
					}
					child := mask &^ (1 << a)
					subs = append(subs,
						prev[faceID{free: child, coords: coords}],
						prev[faceID{free: child, coords: coords | 1<<a}])
				}

				next[faceID{free: mask, coords: coords}] = len(lists)
				lists = append(lists, subs)
			}
		}

		must(s.Push(lists...))
		prev = next
	}
	s.Sort()

	return s, nil
}
