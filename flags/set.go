// FlagSet: the orbit of a flag under a set of flag changes.

package flags

import (
	"fmt"
	"sort"
)

// FlagSet is the set of flags reachable from a seed by repeatedly applying
// changes from a fixed change set. Orbits generated under the same change
// set either coincide or are disjoint, which Equal and Subsets rely on.
type FlagSet struct {
	// flags maps Flag.Key() to the member flags.
	flags map[string]Flag

	// changes is the change set the orbit was generated under.
	changes FlagChanges
}

// NewFlagSet computes the orbit of the structure's first flag under the
// full change set. On a valid structure this is the set of all flags.
// Returns ErrNoFlags for structures without flags.
func NewFlagSet(s Structure) (*FlagSet, error) {
	first, err := FirstFlag(s)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, fmt.Errorf("flags: FlagSet of a flagless structure: %w", ErrNoFlags)
	}

	return NewFlagSetFrom(s, AllChanges(s.Rank()), first)
}

// NewFlagSetFrom computes the orbit of seed under the given change set,
// discarding orientations along the way.
func NewFlagSetFrom(s Structure, changes FlagChanges, seed Flag) (*FlagSet, error) {
	it, err := NewOrientedFlagIterFrom(s, changes, NewOrientedFlag(seed))
	if err != nil {
		return nil, err
	}

	set := &FlagSet{
		flags:   make(map[string]Flag),
		changes: changes.Clone(),
	}
	for it.NextFlag() {
		f := it.OrientedFlag().Flag
		set.flags[f.Key()] = f
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// Len returns the number of member flags.
func (fs *FlagSet) Len() int {
	return len(fs.flags)
}

// IsEmpty reports whether the set has no members.
func (fs *FlagSet) IsEmpty() bool {
	return len(fs.flags) == 0
}

// Contains reports whether f is a member.
func (fs *FlagSet) Contains(f Flag) bool {
	_, ok := fs.flags[f.Key()]

	return ok
}

// Changes returns a copy of the change set the orbit was generated under.
func (fs *FlagSet) Changes() FlagChanges {
	return fs.changes.Clone()
}

// Flags returns the member flags sorted element-wise from rank 0 upward,
// so the order is stable across runs.
func (fs *FlagSet) Flags() []Flag {
	out := make([]Flag, 0, len(fs.flags))
	for _, f := range fs.flags {
		out = append(out, f.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return flagLess(out[i], out[j]) })

	return out
}

// flagLess orders flags element-wise from rank 0 upward.
func flagLess(a, b Flag) bool {
	for r := 0; r < len(a) && r < len(b); r++ {
		if a[r] != b[r] {
			return a[r] < b[r]
		}
	}

	return len(a) < len(b)
}

// Equal reports whether two orbits generated under identical change sets
// are the same orbit. Orbits under one change set coincide or are disjoint,
// so probing a single member settles it. This is not general set equality:
// orbits generated under different change sets compare unequal even when
// their members coincide.
func (fs *FlagSet) Equal(o *FlagSet) bool {
	if !fs.sameChanges(o) {
		return false
	}
	if fs.IsEmpty() || o.IsEmpty() {
		return fs.IsEmpty() == o.IsEmpty()
	}

	var probe string
	for key := range fs.flags {
		probe = key
		break
	}
	_, ok := o.flags[probe]

	return ok
}

// SharesFlagWith reports whether any member of fs is also a member of o.
// For orbits under identical change sets this agrees with Equal.
func (fs *FlagSet) SharesFlagWith(o *FlagSet) bool {
	small, large := fs, o
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for key := range small.flags {
		if _, ok := large.flags[key]; ok {
			return true
		}
	}

	return false
}

// sameChanges reports whether both orbits were generated under the same
// change set, order included.
func (fs *FlagSet) sameChanges(o *FlagSet) bool {
	if len(fs.changes) != len(o.changes) {
		return false
	}
	for i, r := range fs.changes {
		if o.changes[i] != r {
			return false
		}
	}

	return true
}

// Subsets decomposes the orbit under every change set obtained by removing
// exactly one change. For each such change set, the members are consumed in
// sorted order and every not-yet-consumed member seeds one sub-orbit, so
// the sub-orbits of one change set partition the parent orbit and the
// output order is deterministic.
func (fs *FlagSet) Subsets(s Structure) ([]*FlagSet, error) {
	members := fs.Flags()

	var subsets []*FlagSet
	for _, changes := range fs.changes.Subsets() {
		consumed := make(map[string]bool, len(members))

		for _, f := range members {
			if consumed[f.Key()] {
				continue
			}
			sub, err := NewFlagSetFrom(s, changes, f)
			if err != nil {
				return nil, err
			}
			for key := range sub.flags {
				consumed[key] = true
			}
			subsets = append(subsets, sub)
		}
	}

	return subsets, nil
}
