// SPDX-License-Identifier: MIT
// Package: polyflag/core
//
// types.go — Rank, Element, and Structure types plus sentinel errors.

package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core structure operations.
var (
	// ErrLevelOrder indicates a Push* call out of sequence
	// (PushMin on a non-empty structure, or Push before PushMin).
	ErrLevelOrder = errors.New("core: push out of sequence")

	// ErrVertexCount indicates a negative count passed to PushVertices.
	ErrVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrEmptySubs indicates an element was pushed with no subelements.
	ErrEmptySubs = errors.New("core: element has no subelements")

	// ErrSubRange indicates a subelement index outside the previous level.
	ErrSubRange = errors.New("core: subelement index out of range")

	// ErrDuplicateSub indicates a repeated subelement index within one element.
	ErrDuplicateSub = errors.New("core: duplicate subelement index")

	// ErrRankRange indicates a query for a rank with no stored level.
	ErrRankRange = errors.New("core: rank out of range")

	// ErrElementRange indicates a query for an element index out of range.
	ErrElementRange = errors.New("core: element index out of range")

	// ErrMalformed indicates Validate found a broken structural invariant.
	ErrMalformed = errors.New("core: malformed incidence structure")

	// ErrDiamond indicates Validate found a height-two section whose number
	// of middle elements is not exactly two.
	ErrDiamond = errors.New("core: diamond property violated")
)

// Rank is the rank of an element within an incidence structure.
//
// The minimal element has rank -1, vertices rank 0, edges rank 1, and so on
// up to the structure's own rank, held by the maximal element. Rank stores
// the true signed value; use Index or Level for checked slice offsets.
type Rank int

// MinRank is the rank of the minimal element.
const MinRank Rank = -1

// RankFromLevel converts a storage level back to a rank. It is the inverse
// of Level.
func RankFromLevel(level int) Rank { return Rank(level - 1) }

// Index returns the rank as a 0-based element-rank offset.
// It reports ok=false for the minimal rank, which has no such offset.
func (r Rank) Index() (int, bool) {
	if r < 0 {
		return 0, false
	}

	return int(r), true
}

// Level returns the storage level for this rank: the minimal element lives
// at level 0, rank r at level r+1.
func (r Rank) Level() int { return int(r) + 1 }

// IsNull reports whether r is the minimal rank.
func (r Rank) IsNull() bool { return r == MinRank }

// String returns the signed decimal form of the rank.
func (r Rank) String() string { return strconv.Itoa(int(r)) }

// Element is a single face of the incidence structure.
//
// Subs holds the indices of its subelements (one rank below) and Sups the
// indices of its superelements (one rank above). Both lists are ascending
// once the owning Structure has been sorted. Callers must treat returned
// elements as read-only.
type Element struct {
	// Subs are indices into the level one rank below.
	Subs []int

	// Sups are indices into the level one rank above.
	Sups []int
}

// Structure is a rank-indexed incidence structure built bottom-up.
//
// levels[r+1] holds the elements of rank r; level 0 is the single minimal
// element and the last level the single maximal element. Structures are not
// safe for concurrent mutation; once sorted they are safe for concurrent
// reads.
type Structure struct {
	// levels[lvl] holds the elements of rank lvl-1.
	levels [][]Element

	// sorted records whether every Subs and Sups list is ascending.
	sorted bool
}

// New creates an empty Structure. Call PushMin first; an empty structure
// stores no elements and admits no flags.
func New() *Structure {
	return &Structure{}
}
