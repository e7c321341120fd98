package oura

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=source_mocks_test.go -package=oura_test

type summaryFetcher interface {
	DailySummaries(ctx context.Context, kind Kind, start, end time.Time) ([]DailySummary, error)
}

type summaryStore interface {
	Upsert(ctx context.Context, summaries []DailySummary) error
	LatestDay(ctx context.Context) (time.Time, bool, error)
}

// Source pulls Oura daily summaries from the latest stored day up to today.
type Source struct {
	fetcher  summaryFetcher
	store    summaryStore
	daysBack int
	now      func() time.Time
}

func NewSource(fetcher summaryFetcher, store summaryStore, daysBack int, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{
		fetcher:  fetcher,
		store:    store,
		daysBack: daysBack,
		now:      now,
	}
}

func (s *Source) Name() string {
	return "oura"
}

func (s *Source) Pull(ctx context.Context) (int, error) {
	end := pkg.TruncateToDay(s.now())
	start, err := s.startDay(ctx, end)
	if err != nil {
		return 0, err
	}
	log.Debugf("oura pull %s -> %s", start.Format(pkg.DayLayout), end.Format(pkg.DayLayout))

	pulled := 0
	var pullErr error
	for _, kind := range Kinds {
		summaries, err := s.fetcher.DailySummaries(ctx, kind, start, end)
		if err != nil {
			pullErr = multierr.Append(pullErr, err)
			continue
		}
		if err := s.store.Upsert(ctx, summaries); err != nil {
			pullErr = multierr.Append(pullErr, fmt.Errorf("store %s: %w", kind, err))
			continue
		}
		pulled += len(summaries)
	}

	return pulled, pullErr
}

// startDay re-pulls the latest stored day, since Oura keeps updating the current one.
func (s *Source) startDay(ctx context.Context, end time.Time) (time.Time, error) {
	latest, found, err := s.store.LatestDay(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("latest oura day: %w", err)
	}
	if !found || latest.After(end) {
		return end.AddDate(0, 0, -s.daysBack), nil
	}
	return pkg.TruncateToDay(latest), nil
}
