package agent

import (
	"tak/experiments/metrics"
	"tak/game"
)

// Agent picks a move for the side to move in the given state.
type Agent interface {
	// FindMove returns the chosen move and the search metrics (if collected)
	// behind it.
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}
