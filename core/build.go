// SPDX-License-Identifier: MIT
// Package: polyflag/core
//
// build.go — bottom-up construction: PushMin, PushVertices, Push, PushMax,
// and Sort. A Structure is assembled one level at a time; each Push wires
// the superelement lists of the level below, so a fully pushed structure is
// reciprocal by construction.

package core

import (
	"fmt"
	"sort"
)

// PushMin appends the minimal element level. It must be the first push.
// Returns ErrLevelOrder if any level already exists.
// Complexity: O(1).
func (s *Structure) PushMin() error {
	if len(s.levels) != 0 {
		return fmt.Errorf("core: PushMin: minimal element already present: %w", ErrLevelOrder)
	}

	s.levels = append(s.levels, []Element{{}})
	s.sorted = false

	return nil
}

// PushVertices appends the rank-0 level with n vertices, each incident to
// the minimal element. It must follow PushMin directly.
// Returns ErrLevelOrder out of sequence, ErrVertexCount for n < 0.
// Complexity: O(n).
func (s *Structure) PushVertices(n int) error {
	if len(s.levels) != 1 {
		return fmt.Errorf("core: PushVertices: expects exactly the minimal level: %w", ErrLevelOrder)
	}
	if n < 0 {
		return fmt.Errorf("core: PushVertices(%d): %w", n, ErrVertexCount)
	}

	// Every vertex contains the single minimal element; the minimal element
	// gains every vertex as a superelement, already in ascending order.
	vertices := make([]Element, n)
	sups := make([]int, n)
	for i := 0; i < n; i++ {
		vertices[i] = Element{Subs: []int{0}}
		sups[i] = i
	}
	s.levels[0][0].Sups = sups
	s.levels = append(s.levels, vertices)
	s.sorted = false

	return nil
}

// Push appends the next level, one subelement list per new element. Indices
// refer to the current top level. Superelement lists below are wired
// automatically. A failed Push leaves the structure unchanged.
//
// Returns ErrLevelOrder before PushMin, ErrEmptySubs for an element without
// subelements, ErrSubRange / ErrDuplicateSub for bad indices.
// Complexity: O(total subelement indices · log degree) for the copy-sort.
func (s *Structure) Push(subs ...[]int) error {
	if len(s.levels) == 0 {
		return fmt.Errorf("core: Push: no minimal element: %w", ErrLevelOrder)
	}
	prev := s.levels[len(s.levels)-1]

	// 1. Validate and copy every subelement list before touching state.
	level := make([]Element, len(subs))
	for i, sub := range subs {
		if len(sub) == 0 {
			return fmt.Errorf("core: Push: element %d: %w", i, ErrEmptySubs)
		}
		own := append([]int(nil), sub...)
		sort.Ints(own)
		for j, idx := range own {
			if idx < 0 || idx >= len(prev) {
				return fmt.Errorf("core: Push: element %d: subelement %d: %w", i, idx, ErrSubRange)
			}
			if j > 0 && own[j-1] == idx {
				return fmt.Errorf("core: Push: element %d: subelement %d: %w", i, idx, ErrDuplicateSub)
			}
		}
		level[i] = Element{Subs: own}
	}

	// 2. Wire reciprocal superelements; ascending i keeps Sups ascending.
	for i := range level {
		for _, idx := range level[i].Subs {
			prev[idx].Sups = append(prev[idx].Sups, i)
		}
	}

	s.levels = append(s.levels, level)
	s.sorted = false

	return nil
}

// PushMax appends the maximal element level: a single element containing
// every element of the current top level.
// Returns ErrLevelOrder before PushMin, ErrEmptySubs on an empty top level.
// Complexity: O(top level size).
func (s *Structure) PushMax() error {
	if len(s.levels) == 0 {
		return fmt.Errorf("core: PushMax: no minimal element: %w", ErrLevelOrder)
	}

	top := len(s.levels[len(s.levels)-1])
	all := make([]int, top)
	for i := range all {
		all[i] = i
	}

	return s.Push(all)
}

// Sort orders every subelement and superelement list ascending and marks the
// structure sorted. Flag traversals require a sorted structure. Idempotent.
// Complexity: O(total incidences · log degree).
func (s *Structure) Sort() {
	if s.sorted {
		return
	}

	for lvl := range s.levels {
		for i := range s.levels[lvl] {
			el := &s.levels[lvl][i]
			sort.Ints(el.Subs)
			sort.Ints(el.Sups)
		}
	}
	s.sorted = true
}
