package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyflag/builder"
	"github.com/katalvlaran/polyflag/core"
	"github.com/katalvlaran/polyflag/flags"
)

// square returns the sorted abstract 4-gon used throughout these tests.
// Its edges follow the perimeter: e0={0,1}, e1={1,2}, e2={2,3}, e3={0,3}.
func square(t *testing.T) *core.Structure {
	t.Helper()

	s, err := builder.Polygon(4)
	require.NoError(t, err)

	return s
}

// openPath returns a deliberately malformed rank-2 structure: three
// vertices, two edges, one face. Vertex 0 lies under a single edge, so the
// section between it and the face has one middle instead of two.
func openPath(t *testing.T) *core.Structure {
	t.Helper()

	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(3))
	require.NoError(t, s.Push([]int{0, 1}, []int{1, 2}))
	require.NoError(t, s.PushMax())
	s.Sort()

	return s
}

func TestFirstFlag(t *testing.T) {
	t.Run("nullitope has none", func(t *testing.T) {
		f, err := flags.FirstFlag(builder.Nullitope())
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("point flag is empty", func(t *testing.T) {
		f, err := flags.FirstFlag(builder.Point())
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Len(t, f, 0)
	})

	t.Run("dyad", func(t *testing.T) {
		f, err := flags.FirstFlag(builder.Dyad())
		require.NoError(t, err)
		assert.Equal(t, flags.Flag{0}, f)
	})

	t.Run("square descends first subelements", func(t *testing.T) {
		f, err := flags.FirstFlag(square(t))
		require.NoError(t, err)
		assert.Equal(t, flags.Flag{0, 0}, f)
	})

	t.Run("cube", func(t *testing.T) {
		s, err := builder.Hypercube(3)
		require.NoError(t, err)

		f, err := flags.FirstFlag(s)
		require.NoError(t, err)
		assert.Equal(t, flags.Flag{0, 0, 0}, f)
	})
}

func TestFirstFlag_InputChecks(t *testing.T) {
	_, err := flags.FirstFlag(nil)
	assert.ErrorIs(t, err, flags.ErrNilStructure)

	unsorted := core.New()
	require.NoError(t, unsorted.PushMin())
	require.NoError(t, unsorted.PushVertices(2))
	require.NoError(t, unsorted.PushMax())

	_, err = flags.FirstFlag(unsorted)
	assert.ErrorIs(t, err, flags.ErrNotSorted)
}

func TestChange_Involution(t *testing.T) {
	s := square(t)
	f, err := flags.FirstFlag(s)
	require.NoError(t, err)

	for r := 0; r < 2; r++ {
		g, err := flags.Change(s, f, r)
		require.NoError(t, err)
		assert.NotEqual(t, f, g, "change at %d must move the flag", r)

		back, err := flags.Change(s, g, r)
		require.NoError(t, err)
		assert.Equal(t, f, back, "change at %d must be an involution", r)

		// Exactly the rank-r member moves.
		for i := range f {
			if i == r {
				assert.NotEqual(t, f[i], g[i])
			} else {
				assert.Equal(t, f[i], g[i])
			}
		}
	}
}

func TestChange_SquareOrbit(t *testing.T) {
	s := square(t)

	// Alternating changes 0 and 1 walk the full perimeter of 8 flags and
	// return to the seed.
	f := flags.Flag{0, 0}
	seedKey := f.Key()
	seen := map[string]bool{seedKey: true}
	steps := 0
	for {
		r := steps % 2
		require.NoError(t, flags.ChangeInPlace(s, f, r))
		steps++
		if f.Key() == seedKey {
			break
		}
		seen[f.Key()] = true
	}
	assert.Equal(t, 8, steps, "flag graph of the square is one 8-cycle")
	assert.Len(t, seen, 8)
}

func TestChangeInPlace_PointNoOp(t *testing.T) {
	s := builder.Point()
	f := flags.Flag{}

	// A point admits no changes; any rank is accepted and ignored.
	require.NoError(t, flags.ChangeInPlace(s, f, 0))
	require.NoError(t, flags.ChangeInPlace(s, f, 7))
	assert.Len(t, f, 0)
}

func TestChange_InputChecks(t *testing.T) {
	s := square(t)

	_, err := flags.Change(s, flags.Flag{0, 0}, -1)
	assert.ErrorIs(t, err, flags.ErrChangeRange)

	_, err = flags.Change(s, flags.Flag{0, 0}, 2)
	assert.ErrorIs(t, err, flags.ErrChangeRange)

	_, err = flags.Change(s, flags.Flag{0}, 0)
	assert.ErrorIs(t, err, flags.ErrFlagLength)

	_, err = flags.Change(builder.Nullitope(), flags.Flag{}, 0)
	assert.ErrorIs(t, err, flags.ErrChangeRange)

	_, err = flags.Change(nil, flags.Flag{0, 0}, 0)
	assert.ErrorIs(t, err, flags.ErrNilStructure)
}

func TestChange_DiamondViolation(t *testing.T) {
	s := openPath(t)

	// Vertex 0 meets one edge only, so the section between it and the face
	// has a single middle.
	_, err := flags.Change(s, flags.Flag{0, 0}, 1)
	assert.ErrorIs(t, err, flags.ErrDiamond)

	// The defect is structural: core.Validate sees it too.
	assert.Error(t, s.Validate())

	// Away from the defect the change still works.
	g, err := flags.Change(s, flags.Flag{0, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, flags.Flag{1, 0}, g)
}

func TestFlag_At(t *testing.T) {
	f := flags.Flag{4, 7}

	assert.Equal(t, 0, f.At(core.MinRank), "implicit minimal element")
	assert.Equal(t, 4, f.At(0))
	assert.Equal(t, 7, f.At(1))
	assert.Equal(t, 0, f.At(2), "implicit maximal element")
	assert.Equal(t, 0, f.At(9))
}

func TestFlag_CloneAndKey(t *testing.T) {
	f := flags.Flag{1, 2, 3}
	c := f.Clone()
	c[0] = 9

	assert.Equal(t, flags.Flag{1, 2, 3}, f, "clones must not share storage")
	assert.Nil(t, flags.Flag(nil).Clone())

	assert.Equal(t, f.Key(), flags.Flag{1, 2, 3}.Key())
	assert.NotEqual(t, f.Key(), flags.Flag{2, 1, 3}.Key())
	assert.NotEqual(t, f.Key(), flags.Flag{1, 2}.Key())

	assert.Equal(t, "[1 2 3]", f.String())
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, flags.Odd, flags.Even.Flip())
	assert.Equal(t, flags.Even, flags.Odd.Flip())
	assert.Equal(t, 1.0, flags.Even.Sign())
	assert.Equal(t, -1.0, flags.Odd.Sign())
	assert.Equal(t, "even", flags.Even.String())
	assert.Equal(t, "odd", flags.Odd.String())
}

func TestOrientedFlag_Change(t *testing.T) {
	s := square(t)
	of := flags.NewOrientedFlag(flags.Flag{0, 0})
	require.Equal(t, flags.Even, of.Orientation)

	moved, err := of.Change(s, 0)
	require.NoError(t, err)
	assert.Equal(t, flags.Flag{1, 0}, moved.Flag)
	assert.Equal(t, flags.Odd, moved.Orientation, "every change flips parity")

	back, err := moved.Change(s, 0)
	require.NoError(t, err)
	assert.Equal(t, of.Flag, back.Flag)
	assert.Equal(t, flags.Even, back.Orientation)

	_, err = of.Change(s, 5)
	assert.ErrorIs(t, err, flags.ErrChangeRange)
}

func TestAllChangesAndSubsets(t *testing.T) {
	assert.Empty(t, flags.AllChanges(core.MinRank))
	assert.Empty(t, flags.AllChanges(0))
	assert.Equal(t, flags.FlagChanges{0, 1, 2}, flags.AllChanges(3))

	subsets := flags.FlagChanges{0, 1, 2}.Subsets()
	require.Len(t, subsets, 3)
	assert.Equal(t, flags.FlagChanges{1, 2}, subsets[0])
	assert.Equal(t, flags.FlagChanges{0, 2}, subsets[1])
	assert.Equal(t, flags.FlagChanges{0, 1}, subsets[2])

	fc := flags.FlagChanges{1, 0}
	clone := fc.Clone()
	clone[0] = 9
	assert.Equal(t, flags.FlagChanges{1, 0}, fc)
}
