package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tak/game"
	"tak/searcher"
	"tak/searcher/agent"
)

func newTestAgents() []agent.Agent {
	return []agent.Agent{
		agent.NewEvaluationAgent(searcher.NewMCTS(1, searcher.WithEpisodes(32), searcher.WithCutoff(10))),
		agent.NewEvaluationAgent(searcher.NewMCTS(1, searcher.WithEpisodes(32), searcher.WithCutoff(10))),
	}
}

func TestNewLocalEngine(t *testing.T) {
	state := game.NewGameState(game.NewCodec(3))

	t.Run("requires exactly two agents", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(state, newTestAgents()[:1]) })
	})

	t.Run("assigns a unique game id", func(t *testing.T) {
		a := NewLocalEngine(state, newTestAgents())
		b := NewLocalEngine(state, newTestAgents())
		require.NotEqual(t, a.ID, b.ID)
	})
}

func TestPlay(t *testing.T) {
	codec := game.NewCodec(3)

	t.Run("advances the shared state on a legal move", func(t *testing.T) {
		e := NewLocalEngine(game.NewGameState(codec), newTestAgents())
		before := e.State

		err := e.Play(game.Placement{Kind: game.Flat, Row: 1, Col: 1})

		require.NoError(t, err)
		require.NotSame(t, before, e.State)
		require.Equal(t, 1, e.State.Height(1, 1))
	})

	t.Run("rejects an illegal move and leaves the state untouched", func(t *testing.T) {
		e := NewLocalEngine(game.NewGameState(codec), newTestAgents())
		before := e.State

		// Standing stones are not allowed during the opening swap.
		err := e.Play(game.Placement{Kind: game.Standing, Row: 0, Col: 0})

		require.Error(t, err)
		require.Same(t, before, e.State)
		require.Equal(t, 0, e.State.Height(0, 0))
	})
}

func TestRun(t *testing.T) {
	codec := game.NewCodec(3)

	t.Run("plays a full game to a verdict", func(t *testing.T) {
		e := NewLocalEngine(game.NewGameState(codec), newTestAgents())

		winner, moveMetrics := e.Run()

		require.Contains(t, []string{"Player1", "Player2", game.DrawnGame}, winner)
		require.Equal(t, winner, e.State.Winner())
		require.NotEmpty(t, moveMetrics)

		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
		}
		require.Equal(t, "Player1", moveMetrics[0].Player)
	})

	t.Run("stays within the turn limit", func(t *testing.T) {
		e := NewLocalEngine(game.NewGameState(codec), []agent.Agent{
			agent.NewEvaluationAgent(searcher.NewMCTS(2, searcher.WithDuration(5*time.Millisecond), searcher.WithCutoff(10))),
			agent.NewEvaluationAgent(searcher.NewMCTS(2, searcher.WithDuration(5*time.Millisecond), searcher.WithCutoff(10))),
		})

		_, moveMetrics := e.Run()

		require.LessOrEqual(t, len(moveMetrics), MaxTurns)
	})
}
