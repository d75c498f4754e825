// Package flags enumerates and transforms the flags of an abstract
// incidence structure: maximal chains holding exactly one element of every
// proper rank.
//
// What
//
//   - Flag: one element index per proper rank 0..Rank-1, ordered by rank.
//   - Change / ChangeInPlace: the rank-r flag change, swapping the rank-r
//     member for the unique other element incident to its neighbors above
//     and below. An involution distinct from the identity on every valid
//     structure of rank ≥ 1.
//   - FlagIter: exhaustive lexicographic enumeration of all flags via a
//     position odometer. No orientation bookkeeping, minimal state.
//   - OrientedFlagIter: breadth-first traversal of the flag graph under a
//     chosen FlagChanges set, assigning each flag a parity and reporting a
//     NonOrientable event when parities collide.
//   - FlagSet: the orbit of a seed flag under a change set, with the
//     Subsets decomposition used to split orbits into sub-orbits.
//   - Walk: cyclic application of a change sequence from a seed until it
//     recurs, the flag-level engine behind Petrie polygons.
//
// Why
//
//   - Flag counts and flag orbits classify symmetry properties that element
//     counts cannot see.
//   - Orientability of a structure is decidable purely combinatorially by
//     two-coloring the flag graph; OrientedFlagIter implements exactly that.
//   - Omnitruncates and Petrie polygons are built from flag orbits and flag
//     walks rather than from raw elements.
//
// Requirements
//
//	Every function takes the structure through the small Structure
//	interface, satisfied by *core.Structure. Flag changes read sorted
//	incidence lists, so the structure must report IsSorted() == true;
//	ErrNotSorted is returned otherwise. Validity in the sense of
//	core.Validate is assumed, not re-checked: a malformed structure
//	surfaces as ErrDiamond or an element lookup failure mid-traversal.
//
// Determinism
//
//	FlagIter follows subelement positions in increasing order, and
//	OrientedFlagIter applies changes to a FIFO queue in the order given, so
//	both emit flags in a reproducible sequence. FlagSet sorts its output
//	and consumes decomposition seeds in sorted order for the same reason.
//
// Complexity (F = number of flags, n = rank)
//
//   - FlagIter:         Time O(F·n), Memory O(n)
//   - OrientedFlagIter: Time O(F·n) amortized, Memory O(F)
//   - FlagSet:          Time O(F·n), Memory O(F)
//   - Walk:             Time O(L·n) for a length-L walk, Memory O(L·n)
//
// Usage
//
//	s, _ := builder.Hypercube(4)
//	it, err := flags.NewFlagIter(s)
//	if err != nil { ... }
//	for it.Next() {
//	    f := it.Flag()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
//	ok, err := flags.Orientable(builder.Hemicube())
//	// ok == false: the hemicube's flag graph admits no consistent parity.
//
// Errors
//
//   - ErrNilStructure  nil Structure value
//   - ErrNotSorted     incidence lists not sorted
//   - ErrChangeRange   change rank outside the proper ranks
//   - ErrFlagLength    flag length does not match the structure's rank
//   - ErrDiamond       a change met a section without exactly two middles
//   - ErrNoFlags       FlagSet requested on a flagless structure
//   - ErrNoChanges     Walk invoked with an empty change sequence
package flags
