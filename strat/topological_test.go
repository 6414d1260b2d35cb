package strat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/strat"
)

// position returns index of v in order or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// TestOrder_Empty covers a graph with no contexts.
func TestOrder_Empty(t *testing.T) {
	order, err := strat.New().TopologicalOrder()
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestOrder_Unrelated checks isolated contexts all appear.
func TestOrder_Unrelated(t *testing.T) {
	g := strat.New()
	require.NoError(t, g.AddContext("c"))
	require.NoError(t, g.AddContext("a"))
	require.NoError(t, g.AddContext("b"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, order)
}

// TestOrder_Chain verifies a simple chain comes out oldest first.
func TestOrder_Chain(t *testing.T) {
	g := strat.New()
	// 3 is youngest: it is bounded from above by 2, which is bounded by 1
	require.NoError(t, g.AddRelation("3", "2"))
	require.NoError(t, g.AddRelation("2", "1"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, order)
}

// TestOrder_Branching checks every context follows all its older neighbours.
func TestOrder_Branching(t *testing.T) {
	g := strat.New()
	rel := [][2]string{{"b", "a"}, {"c", "a"}, {"d", "b"}, {"d", "c"}, {"e", "d"}, {"x", "c"}}
	for _, r := range rel {
		require.NoError(t, g.AddRelation(r[0], r[1]))
	}

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 6)
	for _, r := range rel {
		assert.Less(t, position(order, r[1]), position(order, r[0]), "%s must precede %s", r[1], r[0])
	}
}

// TestOrder_Cycle ensures contradictory relations are rejected.
func TestOrder_Cycle(t *testing.T) {
	g := strat.New()
	require.NoError(t, g.AddRelation("a", "b"))
	require.NoError(t, g.AddRelation("b", "c"))
	require.NoError(t, g.AddRelation("c", "a"))
	require.NoError(t, g.AddRelation("z", "a"))

	order, err := g.TopologicalOrder()
	assert.Nil(t, order)
	assert.ErrorIs(t, err, strat.ErrCycleDetected)

	cycle, ok := g.FindCycle()
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, cycle)
}

// TestFindCycle_Acyclic checks the negative case.
func TestFindCycle_Acyclic(t *testing.T) {
	g := strat.New()
	require.NoError(t, g.AddRelation("a", "b"))
	cycle, ok := g.FindCycle()
	assert.False(t, ok)
	assert.Nil(t, cycle)
}

// TestRelations_Validation covers input errors and neighbour queries.
func TestRelations_Validation(t *testing.T) {
	g := strat.New()
	assert.ErrorIs(t, g.AddContext(""), strat.ErrEmptyID)
	assert.ErrorIs(t, g.AddRelation("a", ""), strat.ErrEmptyID)
	assert.ErrorIs(t, g.AddRelation("a", "a"), strat.ErrSelfRelation)

	require.NoError(t, g.AddRelation("young", "old"))
	require.NoError(t, g.AddRelation("young", "old"))
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.HasContext("old"))

	above, err := g.Above("young")
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, above)

	below, err := g.Below("old")
	require.NoError(t, err)
	assert.Equal(t, []string{"young"}, below)

	_, err = g.Above("ghost")
	assert.ErrorIs(t, err, strat.ErrUnknownContext)
	_, err = g.Below("ghost")
	assert.ErrorIs(t, err, strat.ErrUnknownContext)
}

// TestFromDeposition checks the physical → date-axis translation: the layer
// on top is the younger one.
func TestFromDeposition(t *testing.T) {
	g, err := strat.FromDeposition([]strat.Deposition{
		{Upper: "topsoil", Lower: "floor"},
		{Upper: "floor", Lower: "pit"},
	})
	require.NoError(t, err)

	above, err := g.Above("topsoil")
	require.NoError(t, err)
	assert.Equal(t, []string{"floor"}, above)

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"pit", "floor", "topsoil"}, order)

	_, err = strat.FromDeposition([]strat.Deposition{{Upper: "x", Lower: "x"}})
	assert.ErrorIs(t, err, strat.ErrSelfRelation)
}
