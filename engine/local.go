package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tak/experiments/metrics"
	"tak/game"
	"tak/searcher/agent"
)

// MaxTurns aborts games that fail to resolve, so experiment runs always
// terminate.
const MaxTurns = 400

// Engine drives a local game between two agents over a single shared state.
// Agents[0] plays the first side, Agents[1] the second.
type Engine struct {
	ID     uuid.UUID
	State  *game.GameState
	Agents []agent.Agent
}

// NewLocalEngine wires two agents to an initial state.
func NewLocalEngine(state *game.GameState, agents []agent.Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{
		ID:     uuid.New(),
		State:  state,
		Agents: agents,
	}
}

// Play validates a proposed move against the legal move set and advances the
// game. LegalMoves is the single source of truth: an illegal move is
// rejected and the state is left unchanged.
func (e *Engine) Play(m game.Move) error {
	legal := e.State.LegalMoves()
	if len(legal) == 0 {
		return fmt.Errorf("illegal move: game is over")
	}
	found := false
	for _, lm := range legal {
		if game.MovesEqual(lm, m) {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("illegal move: %s", m)
	}

	next, err := e.State.Apply(m)
	if err != nil {
		return fmt.Errorf("apply %s: %w", m, err)
	}
	e.State = next
	return nil
}

// Run loops the agents until the game is decided and returns the winner
// together with per-move search metrics.
func (e *Engine) Run() (string, []metrics.MoveMetric) {
	log.Info().Str("game", e.ID.String()).Msgf("%s starts", e.State.Player())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; e.State.Winner() == "" && turn <= MaxTurns; turn++ {
		player := e.State.Player()
		move, metric := e.Agents[e.State.ToMove-1].FindMove(e.State)
		if err := e.Play(move); err != nil {
			// An agent proposing an illegal move is a bug, not a game event.
			panic(err)
		}

		log.Debug().Str("game", e.ID.String()).Int("turn", turn).
			Str("player", player).Msgf("%s", move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: metric,
		})
	}

	winner := e.State.Winner()
	log.Info().Str("game", e.ID.String()).Str("winner", winner).
		Int("moves", len(moveMetrics)).Msg("game over")
	return winner, moveMetrics
}
