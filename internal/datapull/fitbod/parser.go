package fitbod

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const kgToLbs = 2.20462

var ErrMissingColumn = errors.New("export missing column")

var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

var requiredColumns = []string{"Date", "Exercise", "Reps", "Weight(kg)", "isWarmup"}

// Set is one working set from the export, weight in lbs.
type Set struct {
	Date     time.Time
	Exercise string
	Reps     int
	Weight   float64
	Duration float64
	Note     string
}

// ParseExport reads a fitbod CSV export:
// Date,Exercise,Reps,Weight(kg),Duration(s),Distance(m),Incline,Resistance,isWarmup,Note,multiplier
// Warmup sets are dropped. Column order is taken from the header.
func ParseExport(r io.Reader) ([]Set, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var sets []Set
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		if isWarmup, _ := strconv.ParseBool(field("isWarmup")); isWarmup {
			continue
		}

		set, err := parseSet(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

func parseSet(field func(name string) string) (Set, error) {
	date, err := parseDate(field("Date"))
	if err != nil {
		return Set{}, err
	}

	exercise := field("Exercise")
	if exercise == "" {
		return Set{}, errors.New("empty exercise")
	}

	reps, err := parseInt(field("Reps"))
	if err != nil {
		return Set{}, fmt.Errorf("reps: %w", err)
	}
	weightKg, err := parseFloat(field("Weight(kg)"))
	if err != nil {
		return Set{}, fmt.Errorf("weight: %w", err)
	}
	duration, err := parseFloat(field("Duration(s)"))
	if err != nil {
		return Set{}, fmt.Errorf("duration: %w", err)
	}

	return Set{
		Date:     date,
		Exercise: exercise,
		Reps:     reps,
		Weight:   weightKg * kgToLbs,
		Duration: duration,
		Note:     field("Note"),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown date format [%s]", s)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	// reps sometimes come as "8.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// EarliestDate returns the first set date; zero for no sets.
func EarliestDate(sets []Set) time.Time {
	var earliest time.Time
	for i, set := range sets {
		if i == 0 || set.Date.Before(earliest) {
			earliest = set.Date
		}
	}
	return earliest
}
