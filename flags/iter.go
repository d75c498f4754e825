// FlagIter: lazy exhaustive enumeration of every flag of a structure.

package flags

import (
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// FlagIter enumerates every flag of a sorted structure, without tracking
// orientation. Flags come out in the lexicographic order of their
// subelement positions: entry r of the internal counter holds the position
// of the flag's rank-r element within its superelement's subelement list,
// and enumeration is an odometer over these counters.
//
// Use FlagIter when every flag is wanted and parity is not; use
// OrientedFlagIter to restrict the change set or to detect
// non-orientability.
//
// The iterator is a single-pass state machine:
//
//	it, err := flags.NewFlagIter(s)
//	for it.Next() {
//	    f := it.Flag()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
type FlagIter struct {
	// s is the structure whose flags are enumerated.
	s Structure

	// rank is s.Rank() clamped to 0, cached for the hot loop.
	rank int

	// next is the upcoming flag, nil once the enumeration is exhausted.
	next Flag

	// indices holds the position of each flag member within the subelement
	// list of its superelement. These are positions, not element indices.
	indices []int

	// cur is the flag handed out by the last Next.
	cur Flag

	// err is the first failure encountered while advancing.
	err error
}

// NewFlagIter initializes an enumeration over all flags of s.
// Returns ErrNilStructure or ErrNotSorted for unusable input. A structure
// without flags yields an iterator that is exhausted from the start.
func NewFlagIter(s Structure) (*FlagIter, error) {
	first, err := FirstFlag(s)
	if err != nil {
		return nil, err
	}
	rank, _ := s.Rank().Index()

	return &FlagIter{
		s:       s,
		rank:    rank,
		next:    first,
		indices: make([]int, rank),
	}, nil
}

// Next advances to the next flag. It returns false when the enumeration is
// exhausted or has failed; inspect Err to distinguish.
func (it *FlagIter) Next() bool {
	if it.err != nil || it.next == nil {
		return false
	}
	it.cur = it.next.Clone()
	it.advance()

	return true
}

// Flag returns the flag produced by the last successful Next. Each call to
// Next produces fresh storage, so the caller may keep the slice.
func (it *FlagIter) Flag() Flag {
	return it.cur
}

// Err returns the first error encountered while advancing, if any. A
// non-nil error means the structure violated its contract mid-iteration.
func (it *FlagIter) Err() error {
	return it.err
}

// advance turns the position odometer once and rebuilds it.next, or marks
// the enumeration exhausted.
func (it *FlagIter) advance() {
	f := it.next

	// 1. Find the lowest rank whose position can still advance, resetting
	// the ranks that carried. The superelement at rank r+1 bounds the
	// positions available at rank r; rank "rank" is the implicit maximal.
	r := 0
	for {
		if r == it.rank {
			it.next = nil

			return
		}
		parent, err := it.element(r+1, f.At(core.Rank(r+1)))
		if err != nil {
			return
		}
		if len(parent.Subs) == it.indices[r]+1 {
			it.indices[r] = 0
			r++
		} else {
			it.indices[r]++
			break
		}
	}

	// 2. Rebuild the flag below the advanced rank, top-down: each member is
	// read off its superelement's subelement list at the counter position.
	parent, err := it.element(r+1, f.At(core.Rank(r+1)))
	if err != nil {
		return
	}
	for {
		f[r] = parent.Subs[it.indices[r]]
		if r == 0 {
			break
		}
		if parent, err = it.element(r, f[r]); err != nil {
			return
		}
		r--
	}
}

// element fetches an element, recording the first failure and exhausting
// the iterator on error.
func (it *FlagIter) element(r, idx int) (*core.Element, error) {
	el, err := it.s.Element(core.Rank(r), idx)
	if err != nil {
		it.err = fmt.Errorf("flags: FlagIter: %w", err)
		it.next = nil
	}

	return el, err
}

// CountFlags drains a fresh enumeration and reports the number of flags.
func CountFlags(s Structure) (int, error) {
	it, err := NewFlagIter(s)
	if err != nil {
		return 0, err
	}

	n := 0
	for it.Next() {
		n++
	}

	return n, it.Err()
}
