package lifting

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitdash/pkg"
)

const (
	Label1RM    = "1RM (lbs)"
	LabelReps   = "Reps"
	LabelVolume = "Volume"

	// Brzycki is only defined below this many reps.
	brzyckiMaxReps = 37
)

var ErrUnsupportedMetric = errors.New("unsupported metric")

type Metric string

const Metric1RM Metric = "1RM"

type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// TrendPoint is the best value of an exercise on one day.
type TrendPoint struct {
	Date      time.Time `json:"date"`
	Exercise  string    `json:"exercise"`
	Label     string    `json:"label"`
	Value     float64   `json:"value"`
	PctChange float64   `json:"pctChange"` // vs. the first point
}

// ExerciseTrend is the date ordered series of one exercise.
type ExerciseTrend struct {
	Exercise string       `json:"exercise"`
	Label    string       `json:"label"`
	Points   []TrendPoint `json:"points"`
	// OverallChange is (last - first) / first * 100.
	OverallChange float64 `json:"overallChange"`
	// NoBaseline is set when the first value is zero and no percent change can be computed.
	NoBaseline bool `json:"noBaseline"`
}

func (t ExerciseTrend) Border() string {
	switch {
	case t.NoBaseline:
		return ""
	case t.OverallChange > 0:
		return "border-success"
	case t.OverallChange < 0:
		return "border-danger"
	default:
		return ""
	}
}

func (t ExerciseTrend) Latest() TrendPoint {
	return t.Points[len(t.Points)-1]
}

type TrendParams struct {
	Muscles []string
	Window  Window
	Metric  Metric
	Sort    SortDirection
	Now     time.Time
}

// OneRepMax estimates the 1RM with the Brzycki formula.
// It reports false outside the formula's domain.
func OneRepMax(weight float64, reps int) (float64, bool) {
	if weight <= 0 || reps <= 0 || reps >= brzyckiMaxReps {
		return 0, false
	}
	return weight * 36 / float64(brzyckiMaxReps-reps), true
}

type dayKey struct {
	exercise string
	day      time.Time
}

type metricValue struct {
	label string
	value float64
}

// ComputeTrends turns raw sets into per exercise trends, sorted by overall change.
// Exercises seen on fewer than two distinct days are left out.
func ComputeTrends(records []Record, mapping MuscleMapping, params TrendParams) ([]ExerciseTrend, error) {
	metric := params.Metric
	if metric == "" {
		metric = Metric1RM
	}
	if metric != Metric1RM {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMetric, metric)
	}

	window := params.Window
	if !window.Valid() {
		window = DefaultWindow
	}

	selected := make(map[string]bool, len(params.Muscles))
	for _, m := range params.Muscles {
		selected[m] = true
	}

	var joined []Record
	for _, r := range records {
		muscle, ok := mapping[r.Exercise]
		if !ok || !selected[muscle] {
			continue
		}
		joined = append(joined, r)
	}
	joined = FilterWindow(joined, window, params.Now)

	best := bestDailyValues(joined)

	byExercise := make(map[string][]TrendPoint)
	for k, v := range best {
		byExercise[k.exercise] = append(byExercise[k.exercise], TrendPoint{
			Date:     k.day,
			Exercise: k.exercise,
			Label:    v.label,
			Value:    v.value,
		})
	}

	trends := make([]ExerciseTrend, 0, len(byExercise))
	for exercise, points := range byExercise {
		if len(points) < 2 {
			continue
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
		trends = append(trends, newExerciseTrend(exercise, points))
	}

	sortTrends(trends, params.Sort)
	return trends, nil
}

// bestDailyValues buckets the sets (1RM wins over Reps, both win over Volume)
// and keeps the max value per exercise and day.
func bestDailyValues(records []Record) map[dayKey]metricValue {
	oneRM := make(map[string]bool)
	reps := make(map[string]bool)
	type bucketed struct {
		r     Record
		label string
		value float64
	}
	var sets []bucketed

	for _, r := range records {
		if r.Weight > 0 && r.Reps > 0 {
			if v, ok := OneRepMax(r.Weight, r.Reps); ok {
				oneRM[r.Exercise] = true
				sets = append(sets, bucketed{r, Label1RM, v})
			}
		}
	}
	for _, r := range records {
		if r.Weight == 0 && r.Reps > 0 && r.Duration == 0 && !oneRM[r.Exercise] {
			reps[r.Exercise] = true
			sets = append(sets, bucketed{r, LabelReps, float64(r.Reps)})
		}
	}
	for _, r := range records {
		if r.Weight == 0 && r.Reps == 0 && r.Duration > 0 && !oneRM[r.Exercise] && !reps[r.Exercise] {
			// duration * weight, with a zero weight counted as 1
			sets = append(sets, bucketed{r, LabelVolume, r.Duration})
		}
	}

	best := make(map[dayKey]metricValue)
	for _, s := range sets {
		k := dayKey{exercise: s.r.Exercise, day: pkg.TruncateToDay(s.r.Date)}
		if cur, ok := best[k]; !ok || s.value > cur.value {
			best[k] = metricValue{label: s.label, value: s.value}
		}
	}
	return best
}

func newExerciseTrend(exercise string, points []TrendPoint) ExerciseTrend {
	first := points[0].Value
	last := points[len(points)-1].Value
	trend := ExerciseTrend{
		Exercise: exercise,
		Label:    points[0].Label,
		Points:   points,
	}

	if first == 0 {
		trend.NoBaseline = true
		return trend
	}

	trend.OverallChange = (last - first) / first * 100
	for i := range trend.Points {
		trend.Points[i].PctChange = (trend.Points[i].Value - first) / first * 100
	}
	return trend
}

func sortTrends(trends []ExerciseTrend, direction SortDirection) {
	sort.SliceStable(trends, func(i, j int) bool {
		a, b := trends[i], trends[j]
		if a.NoBaseline != b.NoBaseline {
			return !a.NoBaseline
		}
		if a.NoBaseline || a.OverallChange == b.OverallChange {
			return a.Exercise < b.Exercise
		}
		if direction == SortDescending {
			return a.OverallChange > b.OverallChange
		}
		return a.OverallChange < b.OverallChange
	})
}
