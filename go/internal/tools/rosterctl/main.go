package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/bootstrap"
	"github.com/mcdev12/liga/go/internal/config"
	"github.com/mcdev12/liga/go/internal/events"
)

type rosterCLI struct {
	Teams struct {
		Add addTeamCmd `cmd:"" help:"Register a team."`
		Ls  lsTeamsCmd `cmd:"" help:"List teams with their player counts."`
	} `cmd:"" help:"Manage teams."`

	Players struct {
		Add addPlayerCmd `cmd:"" help:"Register a player on an existing team."`
		Ls  lsPlayersCmd `cmd:"" help:"List players."`
	} `cmd:"" help:"Manage players."`

	Search searchCmd `cmd:"" help:"Search teams and players by name, city, team or position."`
	Tabs   tabsCmd   `cmd:"" help:"Show the navigation tabs with their counts."`
}

func main() {
	var cli rosterCLI
	ctx := kong.Parse(&cli,
		kong.Name("rosterctl"),
		kong.Description("Register and search the teams and players of a league."),
		kong.UsageOnError(),
	)

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	env, err := config.LoadEnv()
	ctx.FatalIfErrorf(err)
	league, err := config.LoadLeague(env.LeagueConfig)
	ctx.FatalIfErrorf(err)

	backend, closeBackend, err := bootstrap.OpenBackend(context.Background(), env)
	ctx.FatalIfErrorf(err)

	components, err := bootstrap.New(backend, league, bootstrap.Options{Publisher: events.LogPublisher{}})
	if err != nil {
		closeBackend()
		ctx.FatalIfErrorf(err)
	}

	err = ctx.Run(newCLIContext(components, league, os.Stdout))
	closeBackend()
	ctx.FatalIfErrorf(err)
}
