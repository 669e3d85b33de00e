package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
	"github.com/2beens/fitadapt/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]Workout, error)
	Add(ctx context.Context, w Workout) (*Workout, error)
	Update(ctx context.Context, w Workout) (*Workout, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteWorkoutResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	workouts, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for %s: %s", userID, err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, workouts)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	var workout Workout
	if err := fitness.DecodeJSON(r, &workout); err != nil {
		log.Tracef("add workout: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}
	if err := workout.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	workout.UserID = userID

	added, err := h.repo.Add(ctx, workout)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			http.Error(w, "invalid workout", http.StatusBadRequest)
			return
		}
		log.Errorf("add workout for %s: %s", userID, err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}
	id, err := fitness.PathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := fitness.DecodeJSON(r, &workout); err != nil {
		log.Tracef("update workout: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	if err := workout.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	workout.ID = id
	workout.UserID = userID

	updated, err := h.repo.Update(ctx, workout)
	if errors.Is(err, fitness.ErrNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update workout %s: %s", id, err)
		http.Error(w, "update workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}
	id, err := fitness.PathID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.repo.Delete(ctx, userID, id)
	if errors.Is(err, fitness.ErrNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete workout %s: %s", id, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, DeleteWorkoutResponse{DeletedID: id})
}
