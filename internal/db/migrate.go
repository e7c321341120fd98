package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS fitbod
(
    id           BIGSERIAL PRIMARY KEY,
    date_utc     TIMESTAMPTZ      NOT NULL,
    exercise     VARCHAR          NOT NULL,
    reps         INTEGER          NOT NULL DEFAULT 0,
    weight       DOUBLE PRECISION NOT NULL DEFAULT 0,
    duration     DOUBLE PRECISION NOT NULL DEFAULT 0,
    is_warmup    BOOLEAN          NOT NULL DEFAULT FALSE,
    note         TEXT
);
CREATE INDEX IF NOT EXISTS ix_fitbod_date_utc ON fitbod (date_utc);
CREATE INDEX IF NOT EXISTS ix_fitbod_exercise ON fitbod (exercise);

CREATE TABLE IF NOT EXISTS fitbod_muscles
(
    exercise VARCHAR PRIMARY KEY,
    muscle   VARCHAR NOT NULL
);

CREATE TABLE IF NOT EXISTS refresh_status
(
    id             UUID PRIMARY KEY,
    method         VARCHAR     NOT NULL,
    status         VARCHAR     NOT NULL,
    started_at     TIMESTAMPTZ NOT NULL,
    finished_at    TIMESTAMPTZ,
    records_pulled INTEGER     NOT NULL DEFAULT 0,
    error          TEXT
);
CREATE INDEX IF NOT EXISTS ix_refresh_status_started_at ON refresh_status (started_at);

CREATE TABLE IF NOT EXISTS oura_daily_summary
(
    day        DATE        NOT NULL,
    kind       VARCHAR     NOT NULL,
    score      INTEGER,
    payload    JSONB       NOT NULL DEFAULT '{}',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (day, kind)
);
`

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
