package challenges

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
	"github.com/2beens/fitadapt/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=challenges_test

type challengesRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]Challenge, error)
	Complete(ctx context.Context, userID, id uuid.UUID, date string) (*Challenge, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type DeleteChallengeResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo challengesRepo
	now  func() time.Time
}

func NewHandler(repo challengesRepo, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		repo: repo,
		now:  now,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.list")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	list, err := h.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list challenges for %s: %s", userID, err)
		http.Error(w, "list challenges failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.complete")
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

	c, err := h.repo.Complete(ctx, userID, id, fitness.Today(h.now()))
	if errors.Is(err, fitness.ErrNotFound) {
		http.Error(w, "challenge not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("complete challenge %s: %s", id, err)
		http.Error(w, "complete challenge failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.delete")
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
		http.Error(w, "challenge not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete challenge %s: %s", id, err)
		http.Error(w, "delete challenge failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, DeleteChallengeResponse{DeletedID: id})
}
