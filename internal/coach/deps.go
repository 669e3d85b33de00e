package coach

import (
	"context"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/completion"
	"github.com/2beens/fitadapt/internal/fitness/challenges"
	"github.com/2beens/fitadapt/internal/fitness/goals"
	"github.com/2beens/fitadapt/internal/fitness/profile"
	"github.com/2beens/fitadapt/internal/fitness/workouts"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=coach_test

type verifier interface {
	Verify(ctx context.Context, token string) (*auth.User, error)
}

type profileStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

type workoutStore interface {
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]workouts.Workout, error)
}

type goalStore interface {
	Active(ctx context.Context, userID uuid.UUID) ([]goals.Goal, error)
}

type challengeStore interface {
	Add(ctx context.Context, c challenges.Challenge) (*challenges.Challenge, error)
}

type completer interface {
	Complete(ctx context.Context, req completion.Request) (string, error)
}
