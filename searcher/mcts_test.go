package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tak/experiments/metrics"
	"tak/game"
)

func TestNewMCTS(t *testing.T) {
	t.Run("requires an episode or duration budget", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS(1) })
		require.NotPanics(t, func() { NewMCTS(1, WithEpisodes(1)) })
		require.NotPanics(t, func() { NewMCTS(1, WithDuration(time.Millisecond)) })
	})
}

func TestComputeReward(t *testing.T) {
	require.Equal(t, Win, computeReward("Player1", Win, "Player1"))
	require.Equal(t, Loss, computeReward("Player1", Win, "Player2"))
	require.Equal(t, Draw, computeReward("Player1", Draw, "Player2"))
	require.Equal(t, 0.75, computeReward("Player1", 0.25, "Player2"))
}

func TestRollout(t *testing.T) {
	t.Run("a decided state reports its winner at full reward", func(t *testing.T) {
		state := mockState{player: "Player2", winner: "Player1"}
		refPlayer, score := rollout(state, MaxCutoff, game.EvaluateFlats, metrics.NewDummyCollector())

		require.Equal(t, "Player1", refPlayer)
		require.Equal(t, Win, score)
	})

	t.Run("a drawn state scores half, relative to the side to move", func(t *testing.T) {
		state := mockState{player: "Player2", winner: game.DrawnGame}
		refPlayer, score := rollout(state, MaxCutoff, game.EvaluateFlats, metrics.NewDummyCollector())

		require.Equal(t, "Player2", refPlayer)
		require.Equal(t, Draw, score)
	})

	t.Run("the cutoff hands the state to the evaluator", func(t *testing.T) {
		evaluated := false
		evaluate := func(game.State) float64 { evaluated = true; return 1 }
		state := mockState{player: "Player1", moves: []game.Move{mockMove{id: 0}}}

		refPlayer, score := rollout(state, 3, evaluate, metrics.NewDummyCollector())

		require.True(t, evaluated)
		require.Equal(t, "Player1", refPlayer)
		require.Equal(t, Win, score, "an evaluation of 1 maps to a full win")
	})
}

func TestFindMoveOnRealGame(t *testing.T) {
	codec := game.NewCodec(3)

	t.Run("returns a legal move", func(t *testing.T) {
		state := game.NewGameState(codec)
		mcts := NewMCTS(2, WithEpisodes(64), WithCutoff(20))

		move, _ := mcts.FindMove(state)

		found := false
		for _, legal := range state.LegalMoves() {
			if game.MovesEqual(legal, move) {
				found = true
				break
			}
		}
		require.True(t, found, "search returned %s which is not legal", move)
	})

	t.Run("collects metrics when asked", func(t *testing.T) {
		state := game.NewGameState(codec)
		mcts := NewMCTS(4, WithEpisodes(128), WithCutoff(30), WithMetrics())

		_, metric := mcts.FindMove(state)

		require.Equal(t, 128, metric.Episodes)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 30, metric.Cutoff)
		require.Positive(t, metric.Duration)
	})

	t.Run("takes an immediate winning road", func(t *testing.T) {
		// First to move, two flats already on row 0; any flat placement at
		// (0,2) completes the road.
		state := game.NewGameState(codec)
		for _, m := range []game.Move{
			game.Placement{Kind: game.Flat, Row: 2, Col: 2}, // opening: Second's flat
			game.Placement{Kind: game.Flat, Row: 2, Col: 0}, // opening: First's flat
			game.Placement{Kind: game.Flat, Row: 0, Col: 0},
			game.Placement{Kind: game.Flat, Row: 1, Col: 2},
			game.Placement{Kind: game.Flat, Row: 0, Col: 1},
			game.Placement{Kind: game.Flat, Row: 1, Col: 1},
		} {
			state = state.Play(m).(*game.GameState)
		}
		require.Equal(t, "Player1", state.Player())

		mcts := NewMCTS(1, WithEpisodes(512), WithCutoff(20))
		move, _ := mcts.FindMove(state)

		require.Equal(t, game.Placement{Kind: game.Flat, Row: 0, Col: 2}, move,
			"search should complete the road on row 0")
	})
}
