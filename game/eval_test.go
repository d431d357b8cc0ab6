package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateFlats(t *testing.T) {
	t.Run("empty board is neutral", func(t *testing.T) {
		require.Zero(t, EvaluateFlats(NewGameState(NewCodec(5))))
	})

	t.Run("favors the side with more flat tops", func(t *testing.T) {
		gs := position(5, First, map[[2]int]Stack{
			{0, 0}: {{First, Flat}},
			{0, 1}: {{First, Flat}},
			{4, 4}: {{Second, Flat}},
		})
		require.Positive(t, EvaluateFlats(gs))

		gs.ToMove = Second
		require.Negative(t, EvaluateFlats(gs))
	})
}

func TestEvaluateRoadReach(t *testing.T) {
	// Equal flat counts, but the first side's group spans further.
	gs := position(5, First, map[[2]int]Stack{
		{2, 0}: {{First, Flat}},
		{2, 1}: {{First, Flat}},
		{2, 2}: {{First, Flat}},
		{0, 4}: {{Second, Flat}},
		{4, 0}: {{Second, Flat}},
		{4, 4}: {{Second, Flat}},
	})
	require.Positive(t, EvaluateRoadReach(gs))

	gs.ToMove = Second
	require.Negative(t, EvaluateRoadReach(gs))
}

func TestRoadReach(t *testing.T) {
	gs := position(5, First, map[[2]int]Stack{
		{1, 1}: {{First, Flat}},
		{1, 2}: {{First, Flat}},
		{1, 3}: {{First, Standing}},
	})
	// Standing stones do not extend the reachable span.
	require.InDelta(t, 2.0/5.0, gs.roadReach(First), 1e-9)
	require.Zero(t, gs.roadReach(Second))
}
