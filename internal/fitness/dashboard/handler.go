package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/fitness/workouts"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
	"github.com/2beens/fitadapt/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type workoutStats interface {
	Totals(ctx context.Context, userID uuid.UUID) (*workouts.Totals, error)
	WorkoutDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type goalCounter interface {
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
}

type Summary struct {
	workouts.Totals
	RecentStreak int `json:"recent_streak"`
	ActiveGoals  int `json:"active_goals"`
}

type Handler struct {
	workouts workoutStats
	goals    goalCounter
	now      func() time.Time
}

func NewHandler(workouts workoutStats, goals goalCounter, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		workouts: workouts,
		goals:    goals,
		now:      now,
	}
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	totals, err := h.workouts.Totals(ctx, userID)
	if err != nil {
		log.Errorf("dashboard totals for %s: %s", userID, err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}

	dates, err := h.workouts.WorkoutDates(ctx, userID)
	if err != nil {
		log.Errorf("dashboard workout dates for %s: %s", userID, err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}

	activeGoals, err := h.goals.CountActive(ctx, userID)
	if err != nil {
		log.Errorf("dashboard active goals for %s: %s", userID, err)
		http.Error(w, "get summary failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, Summary{
		Totals:       *totals,
		RecentStreak: CurrentStreak(dates, h.now()),
		ActiveGoals:  activeGoals,
	})
}
