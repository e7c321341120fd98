package lifting

import "time"

// Record is one logged set.
type Record struct {
	Exercise string    `json:"exercise"`
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"` // lbs
	Reps     int       `json:"reps"`
	Duration float64   `json:"duration"` // seconds
}

// MuscleMapping maps an exercise name to its muscle group.
type MuscleMapping map[string]string

// DefaultMuscles are the muscle groups offered (and preselected) on the lifting page.
var DefaultMuscles = []string{
	"Abs",
	"Back",
	"Biceps",
	"Chest",
	"Hamstrings",
	"Lower Back",
	"Quadriceps",
	"Shoulders",
	"Triceps",
}
