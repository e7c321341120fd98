package lifting

import (
	"context"
	"fmt"

	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Records(ctx context.Context) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifting.records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise, date_utc, weight, reps, duration
			FROM fitbod
			WHERE NOT is_warmup
			ORDER BY date_utc;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Exercise, &rec.Date, &rec.Weight, &rec.Reps, &rec.Duration); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.Date = rec.Date.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func (r *Repo) MuscleMapping(ctx context.Context) (_ MuscleMapping, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifting.muscleMapping")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT exercise, muscle FROM fitbod_muscles;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mapping := make(MuscleMapping)
	for rows.Next() {
		var exercise, muscle string
		if err := rows.Scan(&exercise, &muscle); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		mapping[exercise] = muscle
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises", len(mapping)))
	return mapping, nil
}
