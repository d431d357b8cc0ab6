package agent

import (
	"tak/experiments/metrics"
	"tak/game"
	"tak/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent for actual game play: it searches and
// commits to the strongest move found.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return a.mcts.FindMove(state)
}
