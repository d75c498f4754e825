// Package flags provides the structure contract and error definitions
// for flag traversal over an incidence structure.
package flags

import (
	"errors"

	"github.com/katalvlaran/polyflag/core"
)

// Structure is the read-only view of an incidence structure that flag
// traversal consumes. *core.Structure satisfies it; any rank-indexed model
// answering these three queries can be traversed.
type Structure interface {
	// Rank reports the rank of the maximal element.
	Rank() core.Rank

	// IsSorted reports whether every subelement and superelement list is
	// ascending. Traversal rejects unsorted structures.
	IsSorted() bool

	// Element returns the element at the given rank and index. The result
	// is treated as read-only.
	Element(r core.Rank, idx int) (*core.Element, error)
}

// Sentinel errors for flag traversal.
var (
	// ErrNilStructure is returned if a nil structure is passed.
	ErrNilStructure = errors.New("flags: structure is nil")

	// ErrNotSorted is returned when the structure has not been sorted.
	ErrNotSorted = errors.New("flags: structure is not sorted")

	// ErrChangeRange is returned when a flag-change rank falls outside the
	// structure's proper ranks [0, rank).
	ErrChangeRange = errors.New("flags: change rank out of range")

	// ErrFlagLength is returned when a flag's length does not match the
	// structure's rank.
	ErrFlagLength = errors.New("flags: flag length does not match rank")

	// ErrDiamond is returned when a flag change finds a height-two section
	// without exactly two middle elements. It indicates a malformed
	// structure; core.Validate locates the defect.
	ErrDiamond = errors.New("flags: diamond property violated")

	// ErrNoFlags is returned when an operation needs a seed flag but the
	// structure admits none.
	ErrNoFlags = errors.New("flags: structure has no flags")

	// ErrNoChanges is returned when a walk is given an empty change
	// sequence.
	ErrNoChanges = errors.New("flags: empty change sequence")
)

// verify performs the shared entry checks of every traversal constructor.
func verify(s Structure) error {
	if s == nil {
		return ErrNilStructure
	}
	if !s.IsSorted() {
		return ErrNotSorted
	}

	return nil
}
