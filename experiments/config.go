package experiments

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"tak/experiments/metrics"
)

// Config describes a self-play experiment: board size, games per agent
// configuration, and the search configurations under comparison.
type Config struct {
	BoardSize int
	Games     int
	Agents    []metrics.AgentConfig
}

type fileConfig struct {
	BoardSize int            `toml:"board_size"`
	Games     int            `toml:"games"`
	Agents    []agentSection `toml:"agents"`
}

type agentSection struct {
	Goroutines int    `toml:"goroutines"`
	Episodes   int    `toml:"episodes"`
	Duration   string `toml:"duration"`
	Cutoff     int    `toml:"cutoff"`
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() Config {
	return Config{
		BoardSize: 5,
		Games:     4,
		Agents: []metrics.AgentConfig{
			{ID: 1, Goroutines: 1, Episodes: 512, Cutoff: 60},
			{ID: 2, Goroutines: 8, Episodes: 512, Cutoff: 60},
		},
	}
}

// LoadConfig reads a TOML experiment config. A missing file falls back to
// DefaultConfig; a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	raw := fileConfig{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := Config{BoardSize: raw.BoardSize, Games: raw.Games}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = 5
	}
	if cfg.Games == 0 {
		cfg.Games = 1
	}
	for i, a := range raw.Agents {
		ac := metrics.AgentConfig{
			ID:         i + 1,
			Goroutines: a.Goroutines,
			Episodes:   a.Episodes,
			Cutoff:     a.Cutoff,
		}
		if ac.Goroutines == 0 {
			ac.Goroutines = 1
		}
		if a.Duration != "" {
			d, err := time.ParseDuration(a.Duration)
			if err != nil {
				return Config{}, fmt.Errorf("agent %d: bad duration %q: %w", i+1, a.Duration, err)
			}
			ac.Duration = d
		}
		if ac.Episodes <= 0 && ac.Duration <= 0 {
			return Config{}, fmt.Errorf("agent %d: need episodes or duration", i+1)
		}
		cfg.Agents = append(cfg.Agents, ac)
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = DefaultConfig().Agents
	}
	return cfg, nil
}
