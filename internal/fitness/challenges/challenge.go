package challenges

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

var Difficulties = []string{"easy", "medium", "hard"}

type Challenge struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Difficulty    string          `json:"difficulty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Completed     bool            `json:"completed"`
	CompletedDate *string         `json:"completed_date"`
	AIGenerated   bool            `json:"ai_generated"`
	ChallengeData json.RawMessage `json:"challenge_data"`
	CreatedAt     time.Time       `json:"created_at"`
}
