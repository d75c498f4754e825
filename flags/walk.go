// Walk: cyclic application of a fixed change sequence, the flag-level
// engine behind Petrie polygons.

package flags

import (
	"fmt"
)

// Walk applies the given change ranks cyclically starting from seed and
// collects the flag at the start of every round, stopping when the seed
// recurs at a round boundary. One round applies every rank once, in order.
//
// A round is a fixed bijection of the finite flag space, so on a valid
// structure the walk always returns to its seed. With ranks 0..rank-1 the
// collected flags trace a Petrie polygon of the structure, one flag per
// Petrie vertex.
//
// The ranks must be non-empty (ErrNoChanges) and proper (ErrChangeRange),
// and the seed must have one member per proper rank (ErrFlagLength).
func Walk(s Structure, seed Flag, ranks []int) ([]Flag, error) {
	if err := verify(s); err != nil {
		return nil, err
	}
	if len(ranks) == 0 {
		return nil, fmt.Errorf("flags: Walk with no changes: %w", ErrNoChanges)
	}
	rank := s.Rank()
	if err := FlagChanges(ranks).validate(rank); err != nil {
		return nil, err
	}
	n, _ := rank.Index()
	if len(seed) != n {
		return nil, fmt.Errorf("flags: Walk seed has %d members, want %d: %w", len(seed), n, ErrFlagLength)
	}

	seedKey := seed.Key()
	cur := seed.Clone()

	var rounds []Flag
	for {
		rounds = append(rounds, cur.Clone())
		for _, r := range ranks {
			if err := ChangeInPlace(s, cur, r); err != nil {
				return nil, err
			}
		}
		if cur.Key() == seedKey {
			return rounds, nil
		}
	}
}
