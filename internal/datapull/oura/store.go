package oura

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
	}
}

// Upsert writes summaries keyed by (day, kind), replacing older payloads.
func (s *Store) Upsert(ctx context.Context, summaries []DailySummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.oura.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(summaries)))

	if len(summaries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, summary := range summaries {
		batch.Queue(
			`INSERT INTO oura_daily_summary (day, kind, score, payload, updated_at)
				VALUES ($1, $2, $3, $4, NOW())
				ON CONFLICT (day, kind)
				DO UPDATE SET score = EXCLUDED.score, payload = EXCLUDED.payload, updated_at = NOW();`,
			summary.Day, string(summary.Kind), summary.Score, []byte(summary.Payload),
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()
	for i := range summaries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert %s %s: %w", summaries[i].Kind, summaries[i].Day.Format(pkg.DayLayout), err)
		}
	}
	return nil
}

// LatestDay returns the most recent stored day over all kinds.
func (s *Store) LatestDay(ctx context.Context) (_ time.Time, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.oura.latestDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var latest *time.Time
	if err := s.db.QueryRow(ctx, `SELECT MAX(day) FROM oura_daily_summary;`).Scan(&latest); err != nil {
		return time.Time{}, false, err
	}
	if latest == nil {
		return time.Time{}, false, nil
	}
	return latest.UTC(), true, nil
}
