package fitbod

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
)

//go:embed default_muscles.csv
var defaultMusclesCSV []byte

// DefaultMuscles maps known fitbod exercise names to a muscle group.
func DefaultMuscles() (map[string]string, error) {
	records, err := csv.NewReader(bytes.NewReader(defaultMusclesCSV)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read default muscles: %w", err)
	}

	mapping := make(map[string]string, len(records))
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("default muscles line %d: want 2 fields, got %d", i+1, len(record))
		}
		mapping[record[0]] = record[1]
	}
	return mapping, nil
}
