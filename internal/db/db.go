package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/config"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/logger"
)

// Connect opens the Postgres connection pool and verifies it with a ping.
// The pool is bounded by cfg.PoolSize; requests check out one connection
// each via Pool.AcquireSession.
func Connect(ctx context.Context, cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.PoolSize)

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("connected to database")

	return conn, nil
}
