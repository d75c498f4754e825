// SPDX-License-Identifier: MIT
// Package: polyflag/core
//
// validate.go — structural validation of a built incidence structure.
//
// Validate is the boundary check for hand-built input: builders in package
// builder produce structures that pass by construction, and flag traversals
// assume (rather than re-verify) these invariants in their hot loops.

package core

import (
	"fmt"
	"sort"
)

// Validate checks the invariants flag traversal relies on:
//
//  1. a single, subelement-free minimal element and a single,
//     superelement-free maximal element;
//  2. index ranges, no duplicate incidences, and subelement/superelement
//     reciprocity between adjacent levels;
//  3. every non-maximal element has a superelement and every non-minimal
//     element a subelement;
//  4. the diamond property: each section of height two has exactly two
//     middle elements.
//
// It does not require the structure to be sorted. Returns nil, or the first
// violation found wrapped around ErrMalformed or ErrDiamond.
// Complexity: O(total incidences of height-two sections), in practice
// O(elements · degree^2).
func (s *Structure) Validate() error {
	// 1. Unique extremes.
	if len(s.levels) == 0 {
		return fmt.Errorf("core: Validate: no minimal element: %w", ErrMalformed)
	}
	if n := len(s.levels[0]); n != 1 {
		return fmt.Errorf("core: Validate: %d minimal elements: %w", n, ErrMalformed)
	}
	if len(s.levels[0][0].Subs) != 0 {
		return fmt.Errorf("core: Validate: minimal element has subelements: %w", ErrMalformed)
	}
	top := len(s.levels) - 1
	if n := len(s.levels[top]); n != 1 {
		return fmt.Errorf("core: Validate: %d maximal elements: %w", n, ErrMalformed)
	}
	if len(s.levels[top][0].Sups) != 0 {
		return fmt.Errorf("core: Validate: maximal element has superelements: %w", ErrMalformed)
	}

	// 2. Per-element list sanity and reciprocity between adjacent levels.
	for lvl := range s.levels {
		r := RankFromLevel(lvl)
		for i := range s.levels[lvl] {
			el := &s.levels[lvl][i]

			if lvl > 0 && len(el.Subs) == 0 {
				return fmt.Errorf("core: Validate: rank %d element %d: %w", r, i, ErrEmptySubs)
			}
			if lvl < top && len(el.Sups) == 0 {
				return fmt.Errorf("core: Validate: rank %d element %d: no superelements: %w", r, i, ErrMalformed)
			}
			if err := checkIncidence(el.Subs, lvlSize(s, lvl-1), r, i, "subelement"); err != nil {
				return err
			}
			if err := checkIncidence(el.Sups, lvlSize(s, lvl+1), r, i, "superelement"); err != nil {
				return err
			}

			// Reciprocity: each sub lists i back as a sup, and vice versa.
			for _, j := range el.Subs {
				if !contains(s.levels[lvl-1][j].Sups, i) {
					return fmt.Errorf("core: Validate: rank %d element %d: subelement %d does not reciprocate: %w",
						r, i, j, ErrMalformed)
				}
			}
			for _, j := range el.Sups {
				if !contains(s.levels[lvl+1][j].Subs, i) {
					return fmt.Errorf("core: Validate: rank %d element %d: superelement %d does not reciprocate: %w",
						r, i, j, ErrMalformed)
				}
			}
		}
	}

	// 3. Diamond property over every height-two section: for each element z
	// and each x reachable two levels below, x must lie under exactly two of
	// z's subelements.
	for lvl := 2; lvl < len(s.levels); lvl++ {
		for zi := range s.levels[lvl] {
			middles := make(map[int]int)
			for _, yi := range s.levels[lvl][zi].Subs {
				for _, xi := range s.levels[lvl-1][yi].Subs {
					middles[xi]++
				}
			}
			for xi, n := range middles {
				if n != 2 {
					return fmt.Errorf("core: Validate: section between rank %d element %d and rank %d element %d has %d middles: %w",
						RankFromLevel(lvl-2), xi, RankFromLevel(lvl), zi, n, ErrDiamond)
				}
			}
		}
	}

	return nil
}

// lvlSize returns the size of a level, or 0 when it does not exist.
func lvlSize(s *Structure, lvl int) int {
	if lvl < 0 || lvl >= len(s.levels) {
		return 0
	}

	return len(s.levels[lvl])
}

// checkIncidence verifies that an incidence list stays within the adjacent
// level and holds no duplicates. The list may be unsorted; duplicates are
// detected on a sorted copy.
func checkIncidence(list []int, size int, r Rank, i int, kind string) error {
	for _, idx := range list {
		if idx < 0 || idx >= size {
			return fmt.Errorf("core: Validate: rank %d element %d: %s %d: %w", r, i, kind, idx, ErrSubRange)
		}
	}
	if len(list) < 2 {
		return nil
	}

	own := append([]int(nil), list...)
	sort.Ints(own)
	for j := 1; j < len(own); j++ {
		if own[j-1] == own[j] {
			return fmt.Errorf("core: Validate: rank %d element %d: %s %d: %w", r, i, kind, own[j], ErrDuplicateSub)
		}
	}

	return nil
}

// contains reports whether list holds idx. Lists may be unsorted during
// validation, so this is a linear scan.
func contains(list []int, idx int) bool {
	for _, v := range list {
		if v == idx {
			return true
		}
	}

	return false
}
