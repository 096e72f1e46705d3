package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/config"
)

func loadConfig() (config.Env, config.League, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	env, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, config.League{}, err
	}

	league, err := config.LoadLeague(env.LeagueConfig)
	if err != nil {
		return config.Env{}, config.League{}, fmt.Errorf("failed to load league config: %w", err)
	}
	return env, league, nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
