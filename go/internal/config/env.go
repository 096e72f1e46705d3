// Package config loads process settings from the environment and league
// settings from YAML.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mcdev12/liga/go/internal/dbconfig"
)

// Store backends selectable with STORE_BACKEND
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Env holds the settings read from environment variables
type Env struct {
	Port         int    `env:"PORT" envDefault:"8080"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`
	DataDir      string `env:"DATA_DIR" envDefault:"./data"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"./data/liga.db"`
	RedisURL     string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPrefix  string `env:"REDIS_PREFIX" envDefault:"liga:"`
	NATSURL      string `env:"NATS_URL"`
	LeagueConfig string `env:"LIGA_CONFIG"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	DB dbconfig.Config
}

// LoadEnv parses and validates the environment
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	switch e.StoreBackend {
	case BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		return Env{}, fmt.Errorf("unknown STORE_BACKEND %q", e.StoreBackend)
	}
	return e, nil
}
