package groupchallenges

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=groupchallenges_test

type groupChallengesRepo interface {
	Upcoming(ctx context.Context, userID uuid.UUID, fromDate string) ([]GroupChallenge, error)
	Add(ctx context.Context, c GroupChallenge) (*GroupChallenge, error)
	Join(ctx context.Context, challengeID, userID uuid.UUID) error
	Leave(ctx context.Context, challengeID, userID uuid.UUID) error
}

type ParticipationResponse struct {
	ChallengeID uuid.UUID `json:"challengeId"`
	Message     string    `json:"message"`
}

type Handler struct {
	repo groupChallengesRepo
	now  func() time.Time
}

func NewHandler(repo groupChallengesRepo, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		repo: repo,
		now:  now,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groupchallenges.list")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	list, err := h.repo.Upcoming(ctx, userID, fitness.Today(h.now()))
	if err != nil {
		log.Errorf("list group challenges: %s", err)
		http.Error(w, "list group challenges failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groupchallenges.add")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	var c GroupChallenge
	if err := fitness.DecodeJSON(r, &c); err != nil {
		log.Tracef("add group challenge: %s", err)
		http.Error(w, "create group challenge failed", http.StatusBadRequest)
		return
	}
	if c.MaxParticipants == 0 {
		c.MaxParticipants = 10
	}
	if err := c.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	c.CreatorID = userID

	added, err := h.repo.Add(ctx, c)
	if err != nil {
		log.Errorf("add group challenge by %s: %s", userID, err)
		http.Error(w, "create group challenge failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groupchallenges.join")
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

	err = h.repo.Join(ctx, id, userID)
	switch {
	case errors.Is(err, ErrAlreadyJoined):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, fitness.ErrNotFound):
		http.Error(w, "group challenge not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("join group challenge %s: %s", id, err)
		http.Error(w, "failed to join challenge", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ParticipationResponse{
		ChallengeID: id,
		Message:     "Successfully joined the challenge!",
	})
}

func (h *Handler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.groupchallenges.leave")
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

	err = h.repo.Leave(ctx, id, userID)
	if errors.Is(err, ErrNotJoined) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("leave group challenge %s: %s", id, err)
		http.Error(w, "failed to leave challenge", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ParticipationResponse{
		ChallengeID: id,
		Message:     "Left the challenge",
	})
}
