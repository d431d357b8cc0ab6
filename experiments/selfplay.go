package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tak/engine"
	"tak/experiments/metrics"
	"tak/game"
	"tak/searcher"
	"tak/searcher/agent"
)

// Run plays each configured agent against itself for the configured number
// of games and writes per-game and per-move records as CSV.
func Run(cfg Config) error {
	codec := game.NewCodec(cfg.BoardSize)

	writer, err := metrics.NewWriter("selfplay")
	if err != nil {
		return fmt.Errorf("selfplay: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return fmt.Errorf("selfplay: %w", err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for _, ac := range cfg.Agents {
		log.Info().Int("agent", ac.ID).Int("goroutines", ac.Goroutines).
			Int("episodes", ac.Episodes).Dur("duration", ac.Duration).
			Msgf("running %d self-play games on a %dx%d board", cfg.Games, cfg.BoardSize, cfg.BoardSize)

		for i := 0; i < cfg.Games; i++ {
			// Same configuration on both sides for equal playing strength.
			agents := []agent.Agent{newAgent(ac), newAgent(ac)}
			e := engine.NewLocalEngine(game.NewGameState(codec), agents)

			start := time.Now()
			winner, moves := e.Run()
			end := time.Now()

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:     e.ID,
				Agent1: ac.ID,
				Agent2: ac.ID,
				GameMetric: metrics.GameMetric{
					Winner:     winner,
					StartTime:  start,
					EndTime:    end,
					Duration:   end.Sub(start),
					TotalMoves: len(moves),
				},
			})
			for _, m := range moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: e.ID, MoveMetric: m})
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("selfplay: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("selfplay: %w", err)
	}
	return nil
}

func newAgent(ac metrics.AgentConfig) agent.Agent {
	options := []searcher.Option{
		searcher.WithMetrics(),
		searcher.WithEvaluationFn(game.EvaluateRoadReach),
	}
	if ac.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(ac.Episodes))
	}
	if ac.Duration > 0 {
		options = append(options, searcher.WithDuration(ac.Duration))
	}
	if ac.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(ac.Cutoff))
	}
	return agent.NewEvaluationAgent(searcher.NewMCTS(ac.Goroutines, options...))
}
