// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only structure queries.
// Policy:
//   - No algorithms or hidden state here.
//   - Construction and validation live in build.go / validate.go.
//   - Every exported function documents complexity and error behavior.
// AI-HINT (file):
//   - Call Sort() once after the last Push*; every traversal assumes IsSorted().
//   - Element(r, idx) is the only accessor flag traversals need in their hot loop.

package core

import "fmt"

// Rank reports the rank of the structure: the number of stored levels minus
// two, so that the single-level nullitope has rank -1.
//
// Behavior highlights:
//   - Pure query: no mutation, no allocations.
//   - A structure with no levels at all (New without PushMin) reports
//     MinRank-1; it stores no elements and admits no flags.
//
// Returns:
//   - Rank: the rank of the maximal element.
//
// Errors:
//   - None.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Gate traversals on Rank() >= 0; rank -1 and below have no flags.
func (s *Structure) Rank() Rank {
	return Rank(len(s.levels) - 2)
}

// IsSorted reports whether every subelement and superelement list is
// ascending, i.e. whether Sort has run since the last Push*.
//
// Returns:
//   - bool: true once Sort has been called after construction.
//
// Errors:
//   - None.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Flag traversals reject unsorted structures; check this before iterating.
func (s *Structure) IsSorted() bool {
	return s.sorted
}

// ElementCount reports the number of elements of the given rank, or 0 when
// the rank has no stored level.
//
// Inputs:
//   - r: any rank; out-of-range ranks are answered with 0, not an error.
//
// Returns:
//   - int: the size of the level holding rank r.
//
// Errors:
//   - None (out-of-range is a countable absence, not a failure).
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Structure) ElementCount(r Rank) int {
	lvl := r.Level()
	if lvl < 0 || lvl >= len(s.levels) {
		return 0
	}

	return len(s.levels[lvl])
}

// ElementCounts reports the number of elements per stored rank, from the
// minimal rank upward: index i holds the count for rank i-1.
//
// Returns:
//   - []int: a fresh slice of per-level counts (len = Rank().Level()+1).
//
// Errors:
//   - None.
//
// Complexity:
//   - Time O(levels), Space O(levels).
//
// AI-Hints:
//   - For a well-formed structure the first and last entries are always 1.
func (s *Structure) ElementCounts() []int {
	counts := make([]int, len(s.levels))
	for i, level := range s.levels {
		counts[i] = len(level)
	}

	return counts
}

// Element returns the element at the given rank and index.
//
// Inputs:
//   - r:   rank of the element, MinRank through Rank().
//   - idx: index within that rank's level.
//
// Returns:
//   - *Element: a pointer into the structure's own storage. Callers must
//     treat it as read-only; mutating it breaks the sorted invariant.
//
// Errors:
//   - ErrRankRange    if rank r has no stored level.
//   - ErrElementRange if idx is outside the level.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - This accessor sits in every flag change's hot loop; errors indicate a
//     malformed structure or caller bug, never a transient condition.
func (s *Structure) Element(r Rank, idx int) (*Element, error) {
	lvl := r.Level()
	if lvl < 0 || lvl >= len(s.levels) {
		return nil, fmt.Errorf("core: Element(%d, %d): %w", r, idx, ErrRankRange)
	}
	level := s.levels[lvl]
	if idx < 0 || idx >= len(level) {
		return nil, fmt.Errorf("core: Element(%d, %d): %w", r, idx, ErrElementRange)
	}

	return &level[idx], nil
}
