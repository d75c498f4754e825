// Flag, the first-flag construction, and the flag change: the primitives
// every traversal in this package is built from.
package flags

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// Flag is a maximal chain of mutually incident elements, stored as one
// element index per proper rank: entry r holds the index of the flag's
// rank-r element. The minimal and maximal elements are implicit, so a flag
// of a rank-n structure has length n and the single flag of a point is
// empty.
type Flag []int

// At returns the element index the flag holds at rank r, pretending the
// implicit minimal and maximal elements are stored: any rank outside the
// proper range answers 0, the index of the unique extreme element.
func (f Flag) At(r core.Rank) int {
	idx, ok := r.Index()
	if !ok || idx >= len(f) {
		return 0
	}

	return f[idx]
}

// Clone returns an independent copy of the flag. A nil flag stays nil.
func (f Flag) Clone() Flag {
	if f == nil {
		return nil
	}

	return append(Flag{}, f...)
}

// Key returns a compact string form of the flag for map keys. Two flags of
// the same structure share a key exactly when they are equal.
func (f Flag) Key() string {
	buf := make([]byte, 0, 2*len(f))
	for _, idx := range f {
		buf = binary.AppendUvarint(buf, uint64(idx))
	}

	return string(buf)
}

// String returns the flag's element indices from rank 0 upward.
func (f Flag) String() string {
	return fmt.Sprint([]int(f))
}

// FirstFlag returns the flag built by starting at the maximal element and
// repeatedly descending to the first subelement. Sorted subelement lists
// make this the lexicographically least flag, the canonical seed of every
// traversal.
//
// Structures of rank -1 and below admit no flags; FirstFlag then returns a
// nil flag and no error. A point yields the empty flag.
func FirstFlag(s Structure) (Flag, error) {
	if err := verify(s); err != nil {
		return nil, err
	}
	rank, ok := s.Rank().Index()
	if !ok {
		return nil, nil
	}

	f := make(Flag, rank)
	idx := 0
	for r := rank; r > 0; r-- {
		el, err := s.Element(core.Rank(r), idx)
		if err != nil {
			return nil, fmt.Errorf("flags: FirstFlag: %w", err)
		}
		if len(el.Subs) == 0 {
			return nil, fmt.Errorf("flags: FirstFlag: rank %d element %d: %w", r, idx, core.ErrEmptySubs)
		}
		idx = el.Subs[0]
		f[r-1] = idx
	}

	return f, nil
}

// ChangeInPlace applies the flag change at rank r to f: the flag's rank-r
// element is swapped for the unique other element lying between the flag's
// rank r-1 and rank r+1 elements. The swap exists and is unique exactly
// because of the diamond property; a section with any other number of
// middle elements yields ErrDiamond.
//
// A flag change on a point is a no-op, mirroring that a point's flag has no
// proper elements to exchange. For every other structure r must lie in
// [0, rank) and f must have the structure's rank as its length.
func ChangeInPlace(s Structure, f Flag, r int) error {
	if err := verify(s); err != nil {
		return err
	}
	rank, ok := s.Rank().Index()
	if !ok {
		return fmt.Errorf("flags: change at rank %d of a flagless structure: %w", r, ErrChangeRange)
	}
	if rank == 0 {
		return nil
	}
	if r < 0 || r >= rank {
		return fmt.Errorf("flags: change at rank %d of a rank %d structure: %w", r, rank, ErrChangeRange)
	}
	if len(f) != rank {
		return fmt.Errorf("flags: change on flag of length %d in a rank %d structure: %w", len(f), rank, ErrFlagLength)
	}

	// The section around rank r: the flag's elements one rank below and one
	// rank above, with the implicit extremes standing in at the ends.
	belowIdx := f.At(core.Rank(r - 1))
	below, err := s.Element(core.Rank(r-1), belowIdx)
	if err != nil {
		return fmt.Errorf("flags: change at rank %d: %w", r, err)
	}
	aboveIdx := f.At(core.Rank(r + 1))
	above, err := s.Element(core.Rank(r+1), aboveIdx)
	if err != nil {
		return fmt.Errorf("flags: change at rank %d: %w", r, err)
	}

	first, second, n := commonPair(below.Sups, above.Subs)
	if n != 2 {
		return fmt.Errorf("flags: change at rank %d: section between rank %d element %d and rank %d element %d has %d middles: %w",
			r, r-1, belowIdx, r+1, aboveIdx, n, ErrDiamond)
	}

	if f[r] == first {
		f[r] = second
	} else {
		f[r] = first
	}

	return nil
}

// Change applies the flag change at rank r and returns the new flag,
// leaving f untouched.
func Change(s Structure, f Flag, r int) (Flag, error) {
	out := f.Clone()
	if err := ChangeInPlace(s, out, r); err != nil {
		return nil, err
	}

	return out, nil
}

// commonPair scans two ascending lists for their common members. It reports
// the first two found and how many there are, stopping at three since any
// count other than two already violates the diamond property.
func commonPair(a, b []int) (first, second, n int) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			switch n {
			case 0:
				first = a[i]
			case 1:
				second = a[i]
			default:
				return first, second, n + 1
			}
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return first, second, n
}
