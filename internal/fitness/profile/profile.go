package profile

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

var FitnessLevels = []string{"beginner", "intermediate", "advanced"}

type Profile struct {
	ID                  uuid.UUID `json:"id"`
	Email               *string   `json:"email"`
	FullName            *string   `json:"full_name"`
	FitnessLevel        *string   `json:"fitness_level"`
	Age                 *int      `json:"age"`
	Weight              *float64  `json:"weight"`
	Height              *float64  `json:"height"`
	PreferredActivities []string  `json:"preferred_activities"`
	CreatedAt           time.Time `json:"created_at"`
}

func ValidFitnessLevel(level string) bool {
	return slices.Contains(FitnessLevels, level)
}
