package lifting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=lifting_test

var ErrExerciseNotFound = errors.New("exercise not found")

type recordsRepo interface {
	Records(ctx context.Context) ([]Record, error)
	MuscleMapping(ctx context.Context) (MuscleMapping, error)
}

type Service struct {
	repo    recordsRepo
	palette config.Palette
	now     func() time.Time
}

func NewService(repo recordsRepo, palette config.Palette, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:    repo,
		palette: palette,
		now:     now,
	}
}

func (s *Service) Palette() config.Palette {
	return s.palette
}

// Trends loads the records and mapping and computes the 1RM trends.
func (s *Service) Trends(ctx context.Context, muscles []string, window Window) (_ []ExerciseTrend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.lifting.trends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("window", string(window)),
		attribute.Int("muscles", len(muscles)),
	)

	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("get records: %w", err)
	}
	mapping, err := s.repo.MuscleMapping(ctx)
	if err != nil {
		return nil, fmt.Errorf("get muscle mapping: %w", err)
	}

	trends, err := ComputeTrends(records, mapping, TrendParams{
		Muscles: muscles,
		Window:  window,
		Metric:  Metric1RM,
		Sort:    SortAscending,
		Now:     s.now(),
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("trends", len(trends)))
	return trends, nil
}

// Callback reacts to a filter change on the lifting page.
func (s *Service) Callback(ctx context.Context, req CallbackRequest) (*CallbackResponse, error) {
	window := NextWindow(req.Trigger, req.ActiveWindow)

	muscles := req.Muscles
	if muscles == nil {
		muscles = DefaultMuscles
	}

	trends, err := s.Trends(ctx, muscles, window)
	if err != nil {
		return nil, err
	}

	widgets := make([]Widget, 0, len(trends))
	for _, t := range trends {
		widgets = append(widgets, NewWidget(t, s.palette))
	}

	resp := &CallbackResponse{
		Rows:         Rows(widgets, WidgetsPerRow),
		ActiveWindow: window,
	}
	resp.AllStyle, resp.YTDStyle, resp.L6WStyle = ButtonStyles(window, s.palette.Active)
	return resp, nil
}

// ExerciseTrend returns the trend of a single exercise.
func (s *Service) ExerciseTrend(ctx context.Context, exercise string, muscles []string, window Window) (*ExerciseTrend, error) {
	if muscles == nil {
		muscles = DefaultMuscles
	}
	trends, err := s.Trends(ctx, muscles, window)
	if err != nil {
		return nil, err
	}
	for i := range trends {
		if trends[i].Exercise == exercise {
			return &trends[i], nil
		}
	}
	return nil, ErrExerciseNotFound
}

// Muscles lists the muscle groups present in the mapping, or the defaults when there is none.
func (s *Service) Muscles(ctx context.Context) ([]string, error) {
	mapping, err := s.repo.MuscleMapping(ctx)
	if err != nil {
		return nil, fmt.Errorf("get muscle mapping: %w", err)
	}
	seen := make(map[string]bool)
	var muscles []string
	for _, m := range mapping {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		muscles = append(muscles, m)
	}
	if len(muscles) == 0 {
		return DefaultMuscles, nil
	}
	sort.Strings(muscles)
	return muscles, nil
}
