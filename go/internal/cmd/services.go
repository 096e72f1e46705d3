package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/bootstrap"
	"github.com/mcdev12/liga/go/internal/config"
	"github.com/mcdev12/liga/go/internal/events"
	"github.com/mcdev12/liga/go/internal/gateway"
	"github.com/mcdev12/liga/go/internal/player"
	"github.com/mcdev12/liga/go/internal/roster"
	"github.com/mcdev12/liga/go/internal/store"
	"github.com/mcdev12/liga/go/internal/teams"
)

type Services struct {
	Teams   *teams.Service
	Players *player.Service
	Roster  *roster.Service
	Gateway *gateway.ConnectionManager

	closers []func() error
}

func (s *Services) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.Error().Err(err).Msg("failed to close resource")
		}
	}
}

func setupServices(env config.Env, league config.League, backend store.Backend, registry prometheus.Registerer) (*Services, error) {
	services := &Services{
		Gateway: gateway.NewConnectionManager(gateway.DefaultConnectionConfig()),
	}

	publishers := events.Multi{events.LogPublisher{}, services.Gateway}
	if env.NATSURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		jsConfig := events.DefaultJetStreamConfig()
		jsConfig.URL = env.NATSURL
		js, err := events.NewJetStreamPublisher(ctx, jsConfig)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, js)
		services.closers = append(services.closers, js.Close)
	}

	// Wire up dependency injection chain
	// Store → Repository → App → Service
	components, err := bootstrap.New(backend, league, bootstrap.Options{
		Publisher: publishers,
		Metrics:   store.NewPrometheusMetrics(registry),
	})
	if err != nil {
		services.Close()
		return nil, err
	}

	services.Teams = teams.NewService(components.Teams)
	services.Players = player.NewService(components.Players)
	services.Roster = roster.NewService(components.Roster)
	return services, nil
}
