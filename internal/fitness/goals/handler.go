package goals

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=goals_test

type goalsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]Goal, error)
	Add(ctx context.Context, g Goal) (*Goal, error)
	Update(ctx context.Context, g Goal) (*Goal, error)
	UpdateProgress(ctx context.Context, userID, id uuid.UUID, progress float64) (*Goal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteGoalResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	goals, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list goals for %s: %s", userID, err)
		http.Error(w, "list goals failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, goals)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	var goal Goal
	if err := fitness.DecodeJSON(r, &goal); err != nil {
		log.Tracef("add goal: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}
	if err := goal.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	goal.UserID = userID

	added, err := h.repo.Add(ctx, goal)
	if err != nil {
		log.Errorf("add goal for %s: %s", userID, err)
		http.Error(w, "add goal failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
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

	var goal Goal
	if err := fitness.DecodeJSON(r, &goal); err != nil {
		log.Tracef("update goal: %s", err)
		http.Error(w, "update goal failed", http.StatusBadRequest)
		return
	}
	if err := goal.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	goal.ID = id
	goal.UserID = userID

	updated, err := h.repo.Update(ctx, goal)
	if errors.Is(err, fitness.ErrNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update goal %s: %s", id, err)
		http.Error(w, "update goal failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.updateprogress")
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

	var update ProgressUpdate
	if err := fitness.DecodeJSON(r, &update); err != nil {
		log.Tracef("update goal progress: %s", err)
		http.Error(w, "update progress failed", http.StatusBadRequest)
		return
	}
	if update.CurrentProgress == nil || *update.CurrentProgress < 0 {
		http.Error(w, "error, progress must be a non-negative number", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateProgress(ctx, userID, id, *update.CurrentProgress)
	if errors.Is(err, fitness.ErrNotFound) {
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update goal progress %s: %s", id, err)
		http.Error(w, "update progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
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
		http.Error(w, "goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete goal %s: %s", id, err)
		http.Error(w, "delete goal failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, DeleteGoalResponse{DeletedID: id})
}
