// FlagChanges: ordered sets of permitted flag-change ranks, used to restrict
// traversals to a subgroup of the full flag graph.

package flags

import (
	"fmt"

	"github.com/katalvlaran/polyflag/core"
)

// FlagChanges is the set of flag-change ranks a traversal may apply, in the
// order it applies them to each flag.
type FlagChanges []int

// AllChanges returns the full change set {0, …, rank-1}. Structures of rank
// 0 and below admit no changes, so the set is empty there.
func AllChanges(rank core.Rank) FlagChanges {
	n, ok := rank.Index()
	if !ok {
		return FlagChanges{}
	}

	all := make(FlagChanges, n)
	for i := range all {
		all[i] = i
	}

	return all
}

// Clone returns an independent copy.
func (fc FlagChanges) Clone() FlagChanges {
	return append(FlagChanges{}, fc...)
}

// Subsets returns the change sets obtained by removing exactly one change,
// one per position, preserving the order of the rest. Traversing an orbit
// under each subset decomposes it into the sub-orbits that omnitruncation
// builds facets from.
func (fc FlagChanges) Subsets() []FlagChanges {
	subsets := make([]FlagChanges, len(fc))
	for i := range fc {
		sub := make(FlagChanges, 0, len(fc)-1)
		sub = append(sub, fc[:i]...)
		sub = append(sub, fc[i+1:]...)
		subsets[i] = sub
	}

	return subsets
}

// validate reports ErrChangeRange if any change rank falls outside the
// structure's proper ranks [0, rank).
func (fc FlagChanges) validate(rank core.Rank) error {
	for _, r := range fc {
		if r < 0 || core.Rank(r) >= rank {
			return fmt.Errorf("flags: change rank %d in a rank %s structure: %w", r, rank, ErrChangeRange)
		}
	}

	return nil
}
