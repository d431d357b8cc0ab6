package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const (
	Win  = 1.0 // Reward for a winning outcome
	Draw = 0.5 // Reward for a drawn outcome, symmetric for both sides
	Loss = 0.0 // Reward for a losing outcome; also the virtual loss value
)

// MaxCutoff bounds rollout depth when no cutoff is configured. Stack
// shuffling lets Tak playouts wander, so rollouts always fall back to the
// evaluation function eventually.
const MaxCutoff = 512

// ucb1 scores a child for selection. Unexplored children are prioritized.
func ucb1(rewards, visits, c2LnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(c2LnN/visits)
}

// computeReward converts a rollout outcome (score from refPlayer's
// perspective) into a reward for a node owned by player.
func computeReward(refPlayer string, score float64, player string) float64 {
	if player == refPlayer {
		return score
	}
	return Win - score
}
