package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/liga/go/internal/bootstrap"
	"github.com/mcdev12/liga/go/internal/config"
	"github.com/mcdev12/liga/go/internal/store"
)

func setupBackend(env config.Env) (store.Backend, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, closeFn, err := bootstrap.OpenBackend(ctx, env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", env.StoreBackend, err)
	}

	log.Info().Str("backend", env.StoreBackend).Msg("store backend ready")
	return backend, closeFn, nil
}
