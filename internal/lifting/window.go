package lifting

import (
	"time"

	"github.com/2beens/fitdash/pkg"
)

// Window is the time range the lifting page is filtered by.
type Window string

const (
	WindowAll Window = "all"
	WindowYTD Window = "ytd"
	WindowL6W Window = "l6w"

	DefaultWindow = WindowYTD

	lastSixWeeksDays = 42
)

var Windows = []Window{WindowAll, WindowYTD, WindowL6W}

func ParseWindow(s string) (Window, bool) {
	switch w := Window(s); w {
	case WindowAll, WindowYTD, WindowL6W:
		return w, true
	default:
		return "", false
	}
}

func (w Window) Valid() bool {
	_, ok := ParseWindow(string(w))
	return ok
}

// Start returns the first UTC day included in the window, relative to now.
// The all-time window has no start.
func (w Window) Start(now time.Time) (time.Time, bool) {
	today := pkg.TruncateToDay(now)
	switch w {
	case WindowYTD:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), true
	case WindowL6W:
		return today.AddDate(0, 0, -lastSixWeeksDays), true
	default:
		return time.Time{}, false
	}
}

// FilterWindow keeps the records dated on or after the window start. Comparison is by UTC calendar day.
func FilterWindow(records []Record, w Window, now time.Time) []Record {
	start, bounded := w.Start(now)
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if bounded && pkg.TruncateToDay(r.Date).Before(start) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
