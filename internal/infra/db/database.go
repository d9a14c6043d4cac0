package db

import (
	"context"
	"fmt"
	"time"

	"booking-assistant/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema mirrors the persisted-state contract: one table keyed by surrogate
// id with a unique index on (email, date, time). The time column is CHAR(5)
// canonical HH:MM so lexicographic order is chronological.
const schema = `
CREATE TABLE IF NOT EXISTS appointments (
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    date       DATE NOT NULL,
    time       CHAR(5) NOT NULL,
    purpose    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_email_date_time
    ON appointments (email, date, time);
`

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// EnsureSchema creates the appointments table and its unique index if they do
// not exist yet, the way the service owns its local store.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
