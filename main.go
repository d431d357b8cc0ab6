package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tak/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := experiments.LoadConfig("selfplay.toml")
	if err != nil {
		log.Fatal().Err(err).Msg("bad experiment config")
	}
	if err := experiments.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("self-play experiment failed")
	}
}
