package datapull

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrStatusNotFound = errors.New("refresh status not found")

type Method string

const (
	MethodHourly Method = "hourly"
	MethodManual Method = "manual"
	MethodCLI    Method = "cli"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// RefreshStatus is the audit row of one refresh run.
type RefreshStatus struct {
	ID            uuid.UUID  `json:"id"`
	Method        Method     `json:"method"`
	Status        Status     `json:"status"`
	StartedAt     time.Time  `json:"startedAt"`
	FinishedAt    *time.Time `json:"finishedAt,omitempty"`
	RecordsPulled int        `json:"recordsPulled"`
	Error         string     `json:"error,omitempty"`
}

type StatusRepo struct {
	db *pgxpool.Pool
}

func NewStatusRepo(db *pgxpool.Pool) *StatusRepo {
	return &StatusRepo{
		db: db,
	}
}

func (r *StatusRepo) Insert(ctx context.Context, status RefreshStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.refreshStatus.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", status.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO refresh_status (id, method, status, started_at, records_pulled)
			VALUES ($1, $2, $3, $4, $5);`,
		status.ID, string(status.Method), string(status.Status), status.StartedAt, status.RecordsPulled,
	)
	return err
}

func (r *StatusRepo) Finish(ctx context.Context, status RefreshStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.refreshStatus.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("id", status.ID.String()),
		attribute.String("status", string(status.Status)),
	)

	var errText *string
	if status.Error != "" {
		errText = &status.Error
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE refresh_status
			SET status = $1, finished_at = $2, records_pulled = $3, error = $4
			WHERE id = $5;`,
		string(status.Status), status.FinishedAt, status.RecordsPulled, errText, status.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStatusNotFound
	}
	return nil
}

// DeleteProcessing removes runs left in processing by a previous process.
func (r *StatusRepo) DeleteProcessing(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.refreshStatus.deleteProcessing")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM refresh_status WHERE status = $1;`,
		string(StatusProcessing),
	)
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func (r *StatusRepo) Get(ctx context.Context, id uuid.UUID) (_ *RefreshStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.refreshStatus.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT id, method, status, started_at, finished_at, records_pulled, COALESCE(error, '')
			FROM refresh_status WHERE id = $1;`,
		id,
	)
	status, err := scanStatus(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStatusNotFound
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (r *StatusRepo) Latest(ctx context.Context, limit int) (_ []RefreshStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.refreshStatus.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, method, status, started_at, finished_at, records_pulled, COALESCE(error, '')
			FROM refresh_status
			ORDER BY started_at DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []RefreshStatus
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		statuses = append(statuses, *status)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}

func scanStatus(row pgx.Row) (*RefreshStatus, error) {
	var (
		status         RefreshStatus
		method, stText string
	)
	if err := row.Scan(
		&status.ID, &method, &stText, &status.StartedAt,
		&status.FinishedAt, &status.RecordsPulled, &status.Error,
	); err != nil {
		return nil, err
	}
	status.Method = Method(method)
	status.Status = Status(stText)
	return &status, nil
}
