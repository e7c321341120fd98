package fitbod

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"

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

// ReplaceFrom deletes every stored set on or after the earliest set date and
// copies the new sets in, in one transaction. Re-importing an export is a no-op.
func (s *Store) ReplaceFrom(ctx context.Context, sets []Set) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbod.replaceFrom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("sets", len(sets)))

	if len(sets) == 0 {
		return 0, nil
	}
	from := EarliestDate(sets)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	deleted, err := tx.Exec(ctx, `DELETE FROM fitbod WHERE date_utc >= $1;`, from)
	if err != nil {
		return 0, fmt.Errorf("delete sets from %s: %w", from.Format(time.RFC3339), err)
	}
	span.SetAttributes(attribute.Int64("deleted", deleted.RowsAffected()))

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"fitbod"},
		[]string{"date_utc", "exercise", "reps", "weight", "duration", "is_warmup", "note"},
		pgx.CopyFromSlice(len(sets), func(i int) ([]any, error) {
			set := sets[i]
			return []any{set.Date, set.Exercise, set.Reps, set.Weight, set.Duration, false, set.Note}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy sets: %w", err)
	}
	return copied, nil
}

// EnsureMuscles inserts mappings for exercises that have none yet.
func (s *Store) EnsureMuscles(ctx context.Context, mapping map[string]string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbod.ensureMuscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(mapping) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for exercise, muscle := range mapping {
		batch.Queue(
			`INSERT INTO fitbod_muscles (exercise, muscle) VALUES ($1, $2)
				ON CONFLICT (exercise) DO NOTHING;`,
			exercise, muscle,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range mapping {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert muscle mapping: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	span.SetAttributes(attribute.Int64("inserted", inserted))
	return inserted, nil
}
