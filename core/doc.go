// Package core provides the rank-indexed incidence structure that the rest
// of polyflag operates on: a minimal, build-then-freeze model of an abstract
// polytope.
//
// What
//
//   - Rank: the rank value type. Ranks run from -1 (the unique minimal
//     element) up to the structure's own rank (the unique maximal element).
//     Rank carries the true signed value; Index() and Level() perform the
//     checked conversions to slice offsets.
//   - Element: one face of the polytope, holding the indices of its
//     subelements (one rank below) and superelements (one rank above).
//   - Structure: the incidence structure itself, stored as one []Element per
//     rank, built bottom-up with PushMin / PushVertices / Push / PushMax and
//     frozen with Sort before any flag traversal.
//
// Why
//
//   - Flag enumeration (package flags) needs exactly three queries: the
//     structure's rank, whether incidence lists are sorted, and the element
//     at (rank, index). Structure answers all three in O(1).
//   - Keeping construction separate from traversal lets every algorithm
//     assume an immutable, sorted structure with no locking.
//
// Storage model
//
//	levels[0]      — the single minimal element (rank -1)
//	levels[r+1]    — the elements of rank r
//	levels[last]   — the single maximal element (rank = Rank())
//
// A structure of rank n therefore has n+2 levels. The nullitope is the
// single-level structure whose minimal element is also maximal.
//
// Construction
//
//	s := core.New()
//	s.PushMin()            // rank -1
//	s.PushVertices(3)      // rank 0: three vertices
//	s.Push([]int{0, 1}, []int{1, 2}, []int{0, 2}) // rank 1: three edges
//	s.PushMax()            // rank 2: the triangle itself
//	s.Sort()
//
// Sort must be called once after the last Push; every query that feeds a
// flag traversal assumes sorted subelement and superelement lists.
//
// Validation
//
// Validate checks the structural invariants the traversal engine relies on:
// unique minimal and maximal elements, subelement/superelement reciprocity,
// index ranges, and the diamond property (every section of height two has
// exactly two middle elements). Builders in package builder emit structures
// that pass Validate by construction; call it on hand-built input.
//
// Errors
//
//	ErrLevelOrder    - Push* called out of sequence.
//	ErrVertexCount   - negative vertex count.
//	ErrEmptySubs     - element pushed with no subelements.
//	ErrSubRange      - subelement index outside the previous level.
//	ErrDuplicateSub  - repeated subelement index within one element.
//	ErrRankRange     - queried rank has no stored level.
//	ErrElementRange  - queried element index out of range.
//	ErrMalformed     - Validate found a broken structural invariant.
//	ErrDiamond       - Validate found a section without exactly two middles.
package core
