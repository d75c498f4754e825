// Orientation and OrientedFlag: the parity payload carried through
// breadth-first flag traversal.

package flags

// Orientation is the parity of a flag. Every flag change flips it. On a
// non-orientable structure parities cannot be assigned consistently, so
// they carry garbage once the traversal reports the contradiction.
type Orientation int8

const (
	// Even is the parity of a traversal's seed flag and the zero value.
	Even Orientation = iota

	// Odd is the parity reached by an odd number of flag changes.
	Odd
)

// Flip returns the opposite parity.
func (o Orientation) Flip() Orientation {
	if o == Even {
		return Odd
	}

	return Even
}

// Sign returns +1.0 for Even and -1.0 for Odd, the volume sign convention.
func (o Orientation) Sign() float64 {
	if o == Even {
		return 1.0
	}

	return -1.0
}

// String returns "even" or "odd".
func (o Orientation) String() string {
	if o == Even {
		return "even"
	}

	return "odd"
}

// OrientedFlag is a flag together with its orientation. Identity is the
// flag alone: traversal bookkeeping keys on Flag.Key() and treats the
// orientation as payload.
type OrientedFlag struct {
	// Flag is the underlying flag and the flag's identity.
	Flag Flag

	// Orientation is the parity assigned by the traversal that produced
	// this flag.
	Orientation Orientation
}

// NewOrientedFlag wraps a flag with the even orientation.
func NewOrientedFlag(f Flag) OrientedFlag {
	return OrientedFlag{Flag: f}
}

// Clone returns an independent copy.
func (of OrientedFlag) Clone() OrientedFlag {
	return OrientedFlag{Flag: of.Flag.Clone(), Orientation: of.Orientation}
}

// Change applies the flag change at rank r and flips the orientation.
func (of OrientedFlag) Change(s Structure, r int) (OrientedFlag, error) {
	flag, err := Change(s, of.Flag, r)
	if err != nil {
		return OrientedFlag{}, err
	}

	return OrientedFlag{Flag: flag, Orientation: of.Orientation.Flip()}, nil
}
