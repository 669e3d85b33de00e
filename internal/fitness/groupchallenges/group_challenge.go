package groupchallenges

import (
	"errors"
	"time"

	"github.com/2beens/fitadapt/internal/fitness"

	"github.com/google/uuid"
)

var (
	ErrAlreadyJoined = errors.New("already joined this challenge")
	ErrNotJoined     = errors.New("not a participant of this challenge")
)

type GroupChallenge struct {
	ID              uuid.UUID `json:"id"`
	CreatorID       uuid.UUID `json:"creator_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ChallengeType   string    `json:"challenge_type"`
	Difficulty      string    `json:"difficulty"`
	MeetupDate      string    `json:"meetup_date"`
	MeetupTime      string    `json:"meetup_time"`
	LocationName    string    `json:"location_name"`
	LocationAddress string    `json:"location_address"`
	MaxParticipants int       `json:"max_participants"`
	CreatedAt       time.Time `json:"created_at"`

	// filled in for the requesting user on listing
	ParticipantCount int     `json:"participant_count"`
	UserStatus       *string `json:"user_status"`
}

func (c *GroupChallenge) Validate() error {
	if c.Title == "" || c.Description == "" || c.ChallengeType == "" || c.Difficulty == "" ||
		c.MeetupDate == "" || c.MeetupTime == "" || c.LocationName == "" || c.LocationAddress == "" {
		return errors.New("all fields are required")
	}
	if !fitness.ValidDate(c.MeetupDate) {
		return errors.New("invalid meetup date")
	}
	if c.MaxParticipants <= 0 {
		return errors.New("max participants must be positive")
	}
	return nil
}
