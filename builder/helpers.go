// SPDX-License-Identifier: MIT
// Package: polyflag/builder
//
// helpers.go — shared construction helpers.

package builder

import (
	"encoding/binary"
	"fmt"
)

// must terminates construction on an impossible push error. Every
// constructor in this package pushes levels in a statically correct order
// with indices it generated itself, so a failure here is a bug in the
// constructor, never caller input. Caller input is validated before the
// first push and surfaces as a sentinel error.
func must(err error) {
	if err != nil {
		panic(fmt.Errorf("builder: construction bug: %w", err))
	}
}

// subsetKey is a canonical map key for an ascending index set, used to look
// up an element's position within its level while wiring subelements.
func subsetKey(set []int) string {
	buf := make([]byte, 0, 2*len(set))
	for _, v := range set {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// combinations returns every size-k subset of {0..n-1} in lexicographic
// order. k outside [0, n] yields nil.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	for {
		out = append(out, append([]int(nil), idx...))

		// Advance the rightmost index that has room, resetting the tail.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
