package workouts

import (
	"errors"
	"slices"
	"time"

	"github.com/2beens/fitadapt/internal/fitness"

	"github.com/google/uuid"
)

var Intensities = []string{"light", "moderate", "intense"}

type Workout struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	WorkoutDate string    `json:"workout_date"`
	WorkoutType string    `json:"workout_type"`
	Duration    *int      `json:"duration"`
	Distance    *float64  `json:"distance"`
	Calories    *int      `json:"calories"`
	Intensity   *string   `json:"intensity"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// Totals are the lifetime sums over a user's workouts. Null values count as zero.
type Totals struct {
	Workouts int     `json:"total_workouts"`
	Distance float64 `json:"total_distance"`
	Duration int     `json:"total_duration"`
	Calories int     `json:"total_calories"`
}

func (w *Workout) Validate() error {
	if w.WorkoutType == "" {
		return errors.New("workout type empty")
	}
	if w.WorkoutDate != "" && !fitness.ValidDate(w.WorkoutDate) {
		return errors.New("invalid workout date")
	}
	if w.Intensity != nil && !slices.Contains(Intensities, *w.Intensity) {
		return errors.New("invalid intensity")
	}
	if (w.Duration != nil && *w.Duration < 0) ||
		(w.Distance != nil && *w.Distance < 0) ||
		(w.Calories != nil && *w.Calories < 0) {
		return errors.New("negative duration, distance or calories")
	}
	return nil
}
