// OrientedFlagIter: breadth-first traversal of the flag graph under a set
// of flag changes, tracking the parity of every flag found along the way.

package flags

import (
	"fmt"
)

// FlagEvent is a single outcome of an oriented traversal. When
// NonOrientable is false the event carries a newly discovered flag.
// Otherwise it records the moment the traversal reached a known flag with
// the opposite parity, which proves parities cannot be assigned
// consistently. The event form exists because non-orientability may only
// become known after every flag was already emitted, so it cannot be
// bundled with any particular flag.
type FlagEvent struct {
	// Flag is the discovered flag. Meaningful only when NonOrientable is
	// false.
	Flag OrientedFlag

	// NonOrientable reports a parity contradiction. Emitted at most once
	// per traversal.
	NonOrientable bool
}

// visit is the bookkeeping entry for a discovered flag: the parity it was
// first assigned and the number of times the traversal has produced it.
type visit struct {
	flag  OrientedFlag
	count int
}

// flagNext discriminates the outcomes of a single traversal step.
type flagNext int

const (
	// flagNew: the step produced an event for the caller.
	flagNew flagNext = iota

	// flagRepeat: the step reproduced a known flag, step again.
	flagRepeat

	// flagNone: the queue is exhausted.
	flagNone
)

// OrientedFlagIter walks the flag graph breadth-first from a seed flag,
// applying a fixed set of flag changes to each queued flag in order.
// Every new flag is emitted with the parity it was reached at. Reaching a
// known flag with the opposite parity emits the NonOrientable event
// instead.
//
// Use OrientedFlagIter instead of FlagIter when the traversal must be
// restricted to a subset of changes, or when orientation matters.
//
//	it, err := flags.NewOrientedFlagIter(s)
//	for it.Next() {
//	    ev := it.Event()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
type OrientedFlagIter struct {
	// s is the structure being traversed. Its incidence lists must stay
	// sorted for the whole traversal.
	s Structure

	// queue holds the flags whose adjacencies are still being searched.
	// The front flag is retired once every change was applied to it.
	queue []OrientedFlag

	// changes is the change set applied to each queued flag, in order.
	changes FlagChanges

	// changeIdx is the position within changes to apply next.
	changeIdx int

	// seed is the starting flag, emitted before any change is applied.
	seed OrientedFlag

	// started latches after the seed was emitted. Empty iterators start
	// latched.
	started bool

	// found maps Flag.Key() to the visit record of each discovered flag
	// whose adjacencies have not all been seen yet.
	found map[string]*visit

	// orientable stays true until two parities collide on one flag.
	orientable bool

	// cur is the event handed out by the last Next.
	cur FlagEvent

	// err is the first failure encountered while stepping.
	err error
}

// EmptyOrientedFlagIter returns an iterator that is exhausted from the
// start. Traversals of flagless structures reduce to it.
func EmptyOrientedFlagIter(s Structure) *OrientedFlagIter {
	return &OrientedFlagIter{
		s:          s,
		changes:    FlagChanges{},
		started:    true,
		found:      map[string]*visit{},
		orientable: true,
	}
}

// NewOrientedFlagIter starts a traversal from the structure's first flag
// under the full change set. A structure without flags yields an empty
// iterator. Returns ErrNilStructure or ErrNotSorted for unusable input.
func NewOrientedFlagIter(s Structure) (*OrientedFlagIter, error) {
	first, err := FirstFlag(s)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return EmptyOrientedFlagIter(s), nil
	}

	return NewOrientedFlagIterFrom(s, AllChanges(s.Rank()), NewOrientedFlag(first))
}

// NewOrientedFlagIterFrom starts a traversal from an explicit seed under an
// explicit change set. The change ranks must be proper ranks of s
// (ErrChangeRange) and the seed must have one member per proper rank
// (ErrFlagLength). The seed's orientation is taken as given; restricted
// traversals enumerate the orbit of the seed under the change set rather
// than every flag.
func NewOrientedFlagIterFrom(s Structure, changes FlagChanges, seed OrientedFlag) (*OrientedFlagIter, error) {
	if err := verify(s); err != nil {
		return nil, err
	}
	rank := s.Rank()
	if err := changes.validate(rank); err != nil {
		return nil, err
	}
	n, ok := rank.Index()
	if !ok {
		return nil, fmt.Errorf("flags: seed flag in a flagless structure: %w", ErrFlagLength)
	}
	if len(seed.Flag) != n {
		return nil, fmt.Errorf("flags: seed flag has %d members, want %d: %w", len(seed.Flag), n, ErrFlagLength)
	}

	seed = seed.Clone()

	return &OrientedFlagIter{
		s:          s,
		queue:      []OrientedFlag{seed},
		changes:    changes.Clone(),
		seed:       seed,
		found:      map[string]*visit{seed.Flag.Key(): {flag: seed}},
		orientable: true,
	}, nil
}

// Next advances to the next flag event. It returns false when the
// traversal is exhausted or has failed; inspect Err to distinguish.
func (it *OrientedFlagIter) Next() bool {
	if it.err != nil {
		return false
	}

	// 1. The seed is emitted before any change is applied. A point admits
	// no changes, and an empty change set never leaves the seed, so the
	// queue is retired immediately in both cases.
	if !it.started {
		it.started = true
		it.cur = FlagEvent{Flag: it.seed.Clone()}
		if n, ok := it.s.Rank().Index(); (ok && n == 0) || len(it.changes) == 0 {
			it.queue = nil
		}

		return true
	}

	// 2. Step until something new turns up or the queue drains.
	for {
		switch it.advance() {
		case flagNew:
			return true
		case flagNone:
			return false
		case flagRepeat:
			// Known flag, step again.
		}
	}
}

// Event returns the event produced by the last successful Next.
func (it *OrientedFlagIter) Event() FlagEvent {
	return it.cur
}

// NextFlag advances to the next discovered flag, skipping the
// NonOrientable event. Use it when only the flags themselves matter.
func (it *OrientedFlagIter) NextFlag() bool {
	for it.Next() {
		if !it.cur.NonOrientable {
			return true
		}
	}

	return false
}

// OrientedFlag returns the flag produced by the last successful NextFlag.
func (it *OrientedFlagIter) OrientedFlag() OrientedFlag {
	return it.cur.Flag
}

// Err returns the first error encountered while stepping, if any.
func (it *OrientedFlagIter) Err() error {
	return it.err
}

// Orientable reports whether every parity seen so far was consistent. The
// verdict is final only once the traversal is exhausted.
func (it *OrientedFlagIter) Orientable() bool {
	return it.orientable
}

// advance applies one flag change to the front of the queue and classifies
// the outcome.
func (it *OrientedFlagIter) advance() flagNext {
	if len(it.queue) == 0 {
		return flagNone
	}

	// 1. Apply the change at the cursor to the front flag.
	next, err := it.queue[0].Change(it.s, it.changes[it.changeIdx])
	if err != nil {
		it.err = fmt.Errorf("flags: OrientedFlagIter: %w", err)
		it.queue = nil

		return flagNone
	}

	// 2. Move the cursor; wrapping retires the front flag, every change
	// having been applied to it.
	if it.changeIdx+1 == len(it.changes) {
		it.queue = it.queue[1:]
		it.changeIdx = 0
	} else {
		it.changeIdx++
	}

	// 3. Classify. A known flag reached with the opposite parity settles
	// non-orientability; parities carry no information after that, so the
	// contradiction is reported only once.
	key := next.Flag.Key()
	if seen, ok := it.found[key]; ok {
		seen.count++
		if it.orientable && next.Orientation != seen.flag.Orientation {
			it.orientable = false
			it.cur = FlagEvent{NonOrientable: true}

			return flagNew
		}

		// Each flag is produced exactly once per change over the whole
		// traversal. After the last production the record is dead weight.
		if seen.count == len(it.changes) {
			delete(it.found, key)
		}

		return flagRepeat
	}

	it.found[key] = &visit{flag: next, count: 1}
	it.queue = append(it.queue, next.Clone())
	it.cur = FlagEvent{Flag: next}

	return flagNew
}

// Orientable reports whether parities can be assigned consistently to all
// flags of s, draining a full traversal and stopping at the first
// contradiction. Structures without flags are trivially orientable.
func Orientable(s Structure) (bool, error) {
	it, err := NewOrientedFlagIter(s)
	if err != nil {
		return false, err
	}
	for it.Next() {
		if it.Event().NonOrientable {
			return false, nil
		}
	}
	if err := it.Err(); err != nil {
		return false, err
	}

	return true, nil
}
