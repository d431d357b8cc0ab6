package searcher

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"tak/experiments/metrics"
	"tak/game"
)

// Option configures an MCTS searcher.
type Option func(m *MCTS)

// MCTS runs tree-parallel Monte Carlo tree search: a fixed pool of worker
// goroutines shares one tree, with virtual loss keeping them apart.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

// WithEpisodes bounds a search by simulation count.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithDuration bounds a search by wall-clock time.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithCutoff truncates rollouts after depth moves and scores the reached
// state with the evaluation function instead.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithEvaluationFn sets the heuristic used at rollout cutoff.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithMetrics enables search metric collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMCTS returns a searcher running the given number of worker goroutines.
// Either WithEpisodes or WithDuration must be supplied.
func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateFlats,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("must specify search episodes or duration")
	}
	return m
}

// FindMove searches from state and returns the most-visited move along with
// the metrics of the search that produced it.
func (m *MCTS) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	root := newDecision(nil, state)

	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(root, state)
	} else {
		m.countdown(root, state)
	}
	metric := m.metrics.Complete()

	return root.findBestMove(), metric
}

func (m *MCTS) iterate(root *decision, state game.State) {
	task := make(chan struct{}, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- struct{}{}
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range task {
				m.simulate(root, state)
				m.metrics.AddEpisode()
			}
		}()
	}
	wg.Wait()
}

func (m *MCTS) countdown(root *decision, state game.State) {
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *decision, state game.State) {
	newNode, newState := selectThenExpand(root, state)
	refPlayer, score := rollout(newState, m.cutoff, m.evaluate, m.metrics)
	backup(newNode, refPlayer, score)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	parent := root
	child, state, expanded := parent.SelectOrExpand(state)
	for !expanded && child != parent {
		parent = child
		child, state, expanded = parent.SelectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves until the game is decided or the cutoff is hit.
// It returns a score in [Loss, Win] together with the player it is relative
// to.
func rollout(state game.State, cutoff int, evaluate game.Evaluate, collector metrics.Collector) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	for len(moves) > 0 && depth < cutoff {
		state = state.Play(moves[rand.Intn(len(moves))])
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game decided before cutoff
		collector.AddFullPlayout()
		winner := state.Winner()
		if winner == game.DrawnGame {
			return state.Player(), Draw
		}
		return winner, Win
	}

	// At the cutoff state, map the evaluation from [-1,1] to [Loss, Win]
	// relative to the player to move.
	return state.Player(), (evaluate(state) + 1) / 2
}

func backup(node *decision, refPlayer string, score float64) {
	for node != nil {
		node = node.Backup(refPlayer, score)
	}
}
