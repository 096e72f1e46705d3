// Package bootstrap builds the roster components from configuration. Both the
// server and the CLI go through it so they read and write the same data.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/assets"
	"github.com/mcdev12/liga/go/internal/config"
	"github.com/mcdev12/liga/go/internal/events"
	"github.com/mcdev12/liga/go/internal/models"
	"github.com/mcdev12/liga/go/internal/player"
	"github.com/mcdev12/liga/go/internal/roster"
	"github.com/mcdev12/liga/go/internal/session"
	"github.com/mcdev12/liga/go/internal/store"
	"github.com/mcdev12/liga/go/internal/store/filekv"
	"github.com/mcdev12/liga/go/internal/store/memkv"
	"github.com/mcdev12/liga/go/internal/store/rediskv"
	"github.com/mcdev12/liga/go/internal/store/sqlkv"
	"github.com/mcdev12/liga/go/internal/teams"
)

// OpenBackend connects the backend selected by env. The returned close
// function releases it.
func OpenBackend(ctx context.Context, env config.Env) (store.Backend, func() error, error) {
	noop := func() error { return nil }

	switch env.StoreBackend {
	case config.BackendMemory:
		return memkv.New(), noop, nil

	case config.BackendFile:
		b, err := filekv.New(env.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return b, noop, nil

	case config.BackendSQLite:
		b, err := sqlkv.OpenSQLite(ctx, env.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil

	case config.BackendPostgres:
		b, err := sqlkv.OpenPostgres(ctx, env.DB.DSN())
		if err != nil {
			return nil, nil, err
		}
		log.Info().
			Str("host", env.DB.Host).
			Int("port", env.DB.Port).
			Str("database", env.DB.Database).
			Msg("connected to database")
		return b, b.Close, nil

	case config.BackendRedis:
		b, err := rediskv.Dial(ctx, env.RedisURL, env.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", env.StoreBackend)
}

// Options are the optional collaborators of the components
type Options struct {
	Publisher events.Publisher
	Metrics   store.MetricsCollector
	Clock     clockwork.Clock
}

// Components is the wired application
type Components struct {
	TeamStore   *store.Store[[]models.Team]
	PlayerStore *store.Store[[]models.Player]

	Teams   *teams.App
	Players *player.App
	Roster  *roster.App
	Clock   clockwork.Clock
}

// New wires stores, apps and views on top of backend
func New(backend store.Backend, league config.League, opts Options) (*Components, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	teamFallback := []models.Team{}
	playerFallback := []models.Player{}
	if league.SampleFallback {
		sample, err := assets.SampleLeague()
		if err != nil {
			return nil, fmt.Errorf("failed to load sample league: %w", err)
		}
		teamFallback = sample.Teams
		playerFallback = sample.Players
	}

	teamStore := store.New(backend, league.Storage.TeamsKey, teamFallback, store.WithMetrics(opts.Metrics))
	playerStore := store.New(backend, league.Storage.PlayersKey, playerFallback, store.WithMetrics(opts.Metrics))

	// Store -> Repository -> App
	teamsApp := teams.NewApp(teams.NewRepository(teamStore), opts.Publisher, opts.Clock, league.TeamDefaults())
	playerApp := player.NewApp(player.NewRepository(playerStore), teamsApp, opts.Publisher, opts.Clock, league.PlayerDefaults())
	rosterApp := roster.NewApp(teamsApp, playerApp)

	return &Components{
		TeamStore:   teamStore,
		PlayerStore: playerStore,
		Teams:       teamsApp,
		Players:     playerApp,
		Roster:      rosterApp,
		Clock:       opts.Clock,
	}, nil
}

// NewSession starts a form session over the components
func (c *Components) NewSession() *session.Session {
	return session.New(c.Teams, c.Players, c.Roster, c.Clock)
}
