package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyflag/core"
)

// buildSquare assembles the incidence structure of a square:
// 4 vertices, 4 edges, 1 face.
func buildSquare(t *testing.T) *core.Structure {
	t.Helper()
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(4))
	require.NoError(t, s.Push([]int{0, 1}, []int{1, 2}, []int{2, 3}, []int{0, 3}))
	require.NoError(t, s.PushMax())
	s.Sort()

	return s
}

func TestPushMin_Twice(t *testing.T) {
	s := core.New()
	assert.NoError(t, s.PushMin())
	assert.ErrorIs(t, s.PushMin(), core.ErrLevelOrder)
}

func TestPushVertices_Sequencing(t *testing.T) {
	s := core.New()
	assert.ErrorIs(t, s.PushVertices(3), core.ErrLevelOrder, "vertices before the minimal element")

	require.NoError(t, s.PushMin())
	assert.ErrorIs(t, s.PushVertices(-1), core.ErrVertexCount)
	require.NoError(t, s.PushVertices(2))
	assert.ErrorIs(t, s.PushVertices(2), core.ErrLevelOrder, "vertex level twice")
}

func TestPush_Validation(t *testing.T) {
	s := core.New()
	assert.ErrorIs(t, s.Push([]int{0}), core.ErrLevelOrder, "push before the minimal element")

	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(3))

	assert.ErrorIs(t, s.Push([]int{0, 1}, nil), core.ErrEmptySubs)
	assert.ErrorIs(t, s.Push([]int{0, 3}), core.ErrSubRange)
	assert.ErrorIs(t, s.Push([]int{-1, 0}), core.ErrSubRange)
	assert.ErrorIs(t, s.Push([]int{1, 1}), core.ErrDuplicateSub)
}

func TestPush_FailureLeavesStructureUnchanged(t *testing.T) {
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(4))

	require.ErrorIs(t, s.Push([]int{0, 1}, []int{2, 9}), core.ErrSubRange)

	assert.Equal(t, core.Rank(0), s.Rank())
	assert.Equal(t, []int{1, 4}, s.ElementCounts())

	// No superelement of the valid first entry may have been wired.
	v0, err := s.Element(core.Rank(0), 0)
	require.NoError(t, err)
	assert.Empty(t, v0.Sups)
}

func TestBuild_Square(t *testing.T) {
	s := buildSquare(t)

	assert.Equal(t, core.Rank(2), s.Rank())
	assert.True(t, s.IsSorted())
	assert.Equal(t, []int{1, 4, 4, 1}, s.ElementCounts())
	assert.Equal(t, 4, s.ElementCount(core.Rank(1)))
	assert.Equal(t, 1, s.ElementCount(core.MinRank))
	assert.Equal(t, 0, s.ElementCount(core.Rank(5)), "absent rank counts as zero")

	// Edge 0 joins vertices 0 and 1; vertex 1 lies on edges 0 and 1.
	e0, err := s.Element(core.Rank(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, e0.Subs)
	assert.Equal(t, []int{0}, e0.Sups)

	v1, err := s.Element(core.Rank(0), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v1.Subs)
	assert.Equal(t, []int{0, 1}, v1.Sups)

	// The face contains every edge.
	face, err := s.Element(core.Rank(2), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, face.Subs)
	assert.Empty(t, face.Sups)
}

func TestPush_SortsSubelementInput(t *testing.T) {
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(3))
	require.NoError(t, s.Push([]int{2, 0}, []int{1, 0}, []int{2, 1}))

	e0, err := s.Element(core.Rank(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, e0.Subs)
}

func TestElement_Errors(t *testing.T) {
	s := buildSquare(t)

	_, err := s.Element(core.Rank(3), 0)
	assert.ErrorIs(t, err, core.ErrRankRange)
	_, err = s.Element(core.Rank(-2), 0)
	assert.ErrorIs(t, err, core.ErrRankRange)
	_, err = s.Element(core.Rank(1), 4)
	assert.ErrorIs(t, err, core.ErrElementRange)
	_, err = s.Element(core.Rank(1), -1)
	assert.ErrorIs(t, err, core.ErrElementRange)
}

func TestRank_EmptyAndNullitope(t *testing.T) {
	s := core.New()
	assert.Equal(t, core.MinRank-1, s.Rank(), "no levels at all")
	assert.False(t, s.IsSorted())

	require.NoError(t, s.PushMin())
	s.Sort()
	assert.Equal(t, core.MinRank, s.Rank(), "nullitope")
	assert.Equal(t, []int{1}, s.ElementCounts())
}

func TestSort_Idempotent(t *testing.T) {
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(2))
	require.NoError(t, s.PushMax())

	assert.False(t, s.IsSorted())
	s.Sort()
	assert.True(t, s.IsSorted())
	s.Sort()
	assert.True(t, s.IsSorted())
}
