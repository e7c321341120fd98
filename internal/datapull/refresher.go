package datapull

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=refresher_mocks_test.go -package=datapull_test

const (
	refreshLockKey = "fitdash::refresh::lock"
	refreshLockTTL = 55 * time.Minute
)

// deletes the lock only while it still holds the given run id
const releaseLockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

var ErrRefreshInProgress = errors.New("refresh already in progress")

// Source pulls new records from one external service into the store.
type Source interface {
	Name() string
	Pull(ctx context.Context) (int, error)
}

type statusStore interface {
	Insert(ctx context.Context, status RefreshStatus) error
	Finish(ctx context.Context, status RefreshStatus) error
}

type locker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type Refresher struct {
	sources        []Source
	statusStore    statusStore
	locker         locker
	metricsManager *metrics.Manager
	newID          func() uuid.UUID
	now            func() time.Time

	wg sync.WaitGroup
}

type RefresherParams struct {
	Sources        []Source
	StatusStore    statusStore
	Locker         locker
	MetricsManager *metrics.Manager
	// optional, for tests
	NewID func() uuid.UUID
	Now   func() time.Time
}

func NewRefresher(params RefresherParams) *Refresher {
	r := &Refresher{
		sources:        params.Sources,
		statusStore:    params.StatusStore,
		locker:         params.Locker,
		metricsManager: params.MetricsManager,
		newID:          params.NewID,
		now:            params.Now,
	}
	if r.newID == nil {
		r.newID = uuid.New
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Run pulls all sources once and records the run in the audit table.
func (r *Refresher) Run(ctx context.Context, method Method) (*RefreshStatus, error) {
	status, err := r.Begin(ctx, method)
	if err != nil {
		return nil, err
	}
	err = r.Complete(ctx, status)
	return status, err
}

// RunAsync begins a run and completes it in the background.
// Only the begin step (lock and audit row) is reported back.
func (r *Refresher) RunAsync(ctx context.Context, method Method) (*RefreshStatus, error) {
	status, err := r.Begin(ctx, method)
	if err != nil {
		return nil, err
	}

	started := *status
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.Complete(context.WithoutCancel(ctx), status); err != nil {
			log.Errorf("refresh [%s] %s failed: %s", method, status.ID, err)
		}
	}()
	return &started, nil
}

// Wait blocks until background runs are done.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

// Begin takes the refresh lock and inserts a processing audit row.
func (r *Refresher) Begin(ctx context.Context, method Method) (*RefreshStatus, error) {
	id := r.newID()
	acquired, err := r.locker.SetNX(ctx, refreshLockKey, id.String(), refreshLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire refresh lock: %w", err)
	}
	if !acquired {
		r.countRun(method, "skipped")
		return nil, ErrRefreshInProgress
	}

	status := &RefreshStatus{
		ID:        id,
		Method:    method,
		Status:    StatusProcessing,
		StartedAt: r.now().UTC(),
	}
	if err := r.statusStore.Insert(ctx, *status); err != nil {
		r.releaseLock(ctx, id)
		return nil, fmt.Errorf("insert refresh status: %w", err)
	}

	log.Infof("refresh [%s] %s started", method, id)
	return status, nil
}

// Complete runs every source, marks the audit row and releases the lock.
// A failing source does not stop the others; all errors are combined.
func (r *Refresher) Complete(ctx context.Context, status *RefreshStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "datapull.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("id", status.ID.String()),
		attribute.String("method", string(status.Method)),
	)
	defer r.releaseLock(ctx, status.ID)

	var pullErr error
	for _, src := range r.sources {
		n, err := src.Pull(ctx)
		status.RecordsPulled += n
		if r.metricsManager != nil && n > 0 {
			r.metricsManager.CounterRecordsPulled.With(prometheus.Labels{"source": src.Name()}).Add(float64(n))
		}
		if err != nil {
			log.Errorf("refresh %s, source [%s]: %s", status.ID, src.Name(), err)
			pullErr = multierr.Append(pullErr, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		log.Debugf("refresh %s, source [%s] pulled %d records", status.ID, src.Name(), n)
	}

	finishedAt := r.now().UTC()
	status.FinishedAt = &finishedAt
	status.Status = StatusCompleted
	if pullErr != nil {
		status.Status = StatusFailed
		status.Error = pullErr.Error()
	}
	span.SetAttributes(attribute.Int("records", status.RecordsPulled))

	if r.metricsManager != nil {
		r.metricsManager.HistRefreshDuration.Observe(finishedAt.Sub(status.StartedAt).Seconds())
	}
	r.countRun(status.Method, string(status.Status))

	if err := r.statusStore.Finish(ctx, *status); err != nil {
		return multierr.Append(pullErr, fmt.Errorf("finish refresh status: %w", err))
	}

	log.Infof("refresh [%s] %s %s, pulled %d records", status.Method, status.ID, status.Status, status.RecordsPulled)
	return pullErr
}

func (r *Refresher) releaseLock(ctx context.Context, id uuid.UUID) {
	released, err := r.locker.Eval(ctx, releaseLockScript, []string{refreshLockKey}, id.String()).Int64()
	if err != nil {
		log.Errorf("release refresh lock: %s", err)
		return
	}
	if released == 0 {
		log.Warnf("refresh %s: lock expired or taken by another run, not released", id)
	}
}

// ResetLock drops the refresh lock regardless of its owner.
// Only safe on startup, when no run of this process can hold it.
func (r *Refresher) ResetLock(ctx context.Context) (bool, error) {
	deleted, err := r.locker.Del(ctx, refreshLockKey).Result()
	if err != nil {
		return false, fmt.Errorf("reset refresh lock: %w", err)
	}
	return deleted > 0, nil
}

func (r *Refresher) countRun(method Method, status string) {
	if r.metricsManager == nil {
		return
	}
	r.metricsManager.CounterRefreshRuns.With(prometheus.Labels{
		"method": string(method),
		"status": status,
	}).Inc()
}
