package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyflag/core"
)

func TestValidate_WellFormed(t *testing.T) {
	t.Run("nullitope", func(t *testing.T) {
		s := core.New()
		require.NoError(t, s.PushMin())
		assert.NoError(t, s.Validate())
	})

	t.Run("point", func(t *testing.T) {
		s := core.New()
		require.NoError(t, s.PushMin())
		require.NoError(t, s.PushVertices(1))
		assert.NoError(t, s.Validate())
	})

	t.Run("dyad", func(t *testing.T) {
		s := core.New()
		require.NoError(t, s.PushMin())
		require.NoError(t, s.PushVertices(2))
		require.NoError(t, s.PushMax())
		assert.NoError(t, s.Validate())
	})

	t.Run("square", func(t *testing.T) {
		assert.NoError(t, buildSquare(t).Validate())
	})
}

func TestValidate_Empty(t *testing.T) {
	assert.ErrorIs(t, core.New().Validate(), core.ErrMalformed)
}

func TestValidate_MultipleMaximal(t *testing.T) {
	// Two rank-0 elements with nothing above them: no unique maximal element.
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(2))

	assert.ErrorIs(t, s.Validate(), core.ErrMalformed)
}

func TestValidate_Diamond(t *testing.T) {
	// An open triangle: vertex 0 lies on one edge only, so the section
	// between vertex 0 and the maximal element has a single middle.
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(3))
	require.NoError(t, s.Push([]int{0, 1}, []int{1, 2}))
	require.NoError(t, s.PushMax())

	assert.ErrorIs(t, s.Validate(), core.ErrDiamond)
}

func TestValidate_BrokenReciprocity(t *testing.T) {
	// Elements are returned by pointer into the structure's storage;
	// rewriting an incidence list behind the structure's back is exactly the
	// kind of damage Validate exists to catch.
	s := buildSquare(t)
	e0, err := s.Element(core.Rank(1), 0)
	require.NoError(t, err)
	e0.Subs[0] = 3 // edge 0 now claims vertex 3, which does not list it back

	assert.ErrorIs(t, s.Validate(), core.ErrMalformed)
}

func TestValidate_DuplicateIncidence(t *testing.T) {
	// Vertex 1 lists edge 0 twice. The duplicate is caught on the vertex's
	// own incidence list, before any reciprocity walk.
	s := buildSquare(t)
	v1, err := s.Element(core.Rank(0), 1)
	require.NoError(t, err)
	v1.Sups[1] = v1.Sups[0]

	assert.ErrorIs(t, s.Validate(), core.ErrDuplicateSub)
}

func TestValidate_DanglingElement(t *testing.T) {
	// A vertex with no superelement: flag descent could never reach it.
	s := core.New()
	require.NoError(t, s.PushMin())
	require.NoError(t, s.PushVertices(3))
	require.NoError(t, s.Push([]int{0, 1}))

	assert.ErrorIs(t, s.Validate(), core.ErrMalformed)
}
