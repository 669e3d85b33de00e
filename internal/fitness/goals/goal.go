package goals

import (
	"errors"
	"time"

	"github.com/2beens/fitadapt/internal/fitness"

	"github.com/google/uuid"
)

type Goal struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	TargetValue     float64   `json:"target_value"`
	CurrentProgress float64   `json:"current_progress"`
	Unit            *string   `json:"unit"`
	Deadline        *string   `json:"deadline"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

type ProgressUpdate struct {
	CurrentProgress *float64 `json:"current_progress"`
}

func (g *Goal) Validate() error {
	if g.Title == "" {
		return errors.New("goal title empty")
	}
	if g.TargetValue <= 0 {
		return errors.New("target value must be positive")
	}
	if g.CurrentProgress < 0 {
		return errors.New("negative progress")
	}
	if g.Deadline != nil && !fitness.ValidDate(*g.Deadline) {
		return errors.New("invalid deadline")
	}
	return nil
}
