package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/liga/go/internal/assets"
	"github.com/mcdev12/liga/go/internal/config"
	"github.com/mcdev12/liga/go/internal/dbconfig"
	"github.com/mcdev12/liga/go/internal/store/sqlkv"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type summary struct {
	total    int
	inserted int
	skipped  int
}

// seed writes league under the configured keys unless a value is already
// stored there
func seed(ctx context.Context, db execer, storage config.Storage, league assets.League) (summary, error) {
	ddl, err := sqlkv.CreateTableSQL(sqlkv.DialectPostgres)
	if err != nil {
		return summary{}, err
	}
	if _, err := db.Exec(ctx, ddl); err != nil {
		return summary{}, fmt.Errorf("create table: %w", err)
	}

	entries := []struct {
		key   string
		value any
	}{
		{storage.TeamsKey, league.Teams},
		{storage.PlayersKey, league.Players},
	}

	var s summary
	for _, e := range entries {
		s.total++
		data, err := json.Marshal(e.value)
		if err != nil {
			return s, fmt.Errorf("marshal %s: %w", e.key, err)
		}

		cmdTag, err := db.Exec(ctx, `
            INSERT INTO kv_entries (entry_key, value, updated_at)
            VALUES ($1, $2, now())
            ON CONFLICT (entry_key) DO NOTHING
        `, e.key, data)
		if err != nil {
			return s, fmt.Errorf("insert %s: %w", e.key, err)
		}
		if cmdTag.RowsAffected() == 1 {
			s.inserted++
		} else {
			s.skipped++
		}
	}
	return s, nil
}

func loadLeague(path string) (assets.League, error) {
	if path == "" {
		return assets.SampleLeague()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return assets.League{}, fmt.Errorf("read league: %w", err)
	}
	return assets.ParseLeague(data)
}

func main() {
	file := flag.String("file", "", "league YAML to seed (defaults to the embedded sample league)")
	flag.Parse()

	// 1) Load the league snapshot
	league, err := loadLeague(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load league: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.LoadLeague(os.Getenv("LIGA_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load league config: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "db config: %v\n", err)
		os.Exit(1)
	}
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert and count
	s, err := seed(context.Background(), pool, settings.Storage, league)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	// 4) Print summary
	fmt.Printf(
		"League seed complete: %d keys, %d inserted, %d skipped (%d teams, %d players)\n",
		s.total, s.inserted, s.skipped, len(league.Teams), len(league.Players),
	)
}
