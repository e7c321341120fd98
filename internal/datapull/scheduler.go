package datapull

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

// SchedulerError is returned when the periodic job cannot be registered.
// The service keeps running without the schedule in that case.
type SchedulerError struct {
	Spec string
	Err  error
}

func (e *SchedulerError) Error() string {
	return fmt.Sprintf("schedule [%s]: %s", e.Spec, e.Err)
}

func (e *SchedulerError) Unwrap() error {
	return e.Err
}

type Scheduler struct {
	spec string
	cron *cron.Cron
}

// NewScheduler registers job on a cron spec, evaluated in UTC.
// Specs use the seconds field (6 fields) or descriptors like @hourly.
func NewScheduler(spec string, job func()) (*Scheduler, error) {
	if job == nil {
		return nil, &SchedulerError{Spec: spec, Err: fmt.Errorf("nil job")}
	}

	c := cron.NewWithLocation(time.UTC)
	if err := c.AddFunc(spec, job); err != nil {
		return nil, &SchedulerError{Spec: spec, Err: err}
	}

	return &Scheduler{
		spec: spec,
		cron: c,
	}, nil
}

func (s *Scheduler) Start() {
	log.Infof("scheduler started [%s]", s.spec)
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Infof("scheduler stopped [%s]", s.spec)
}

// Next returns the next activation time; zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// HourlyJob adapts the refresher into a cron job.
func HourlyJob(r *Refresher) func() {
	return func() {
		_, err := r.Run(context.Background(), MethodHourly)
		switch {
		case errors.Is(err, ErrRefreshInProgress):
			log.Warnln("hourly refresh skipped, another run holds the lock")
		case err != nil:
			log.Errorf("hourly refresh: %s", err)
		}
	}
}
