package profile

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p Profile) (*Profile, error)
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := fitness.UserID(r)
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	p, err := h.repo.Get(ctx, userID)
	if errors.Is(err, fitness.ErrNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get profile %s: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.upsert")
	defer span.End()

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, auth.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}

	var p Profile
	if err := fitness.DecodeJSON(r, &p); err != nil {
		log.Tracef("upsert profile: %s", err)
		http.Error(w, "save profile failed", http.StatusBadRequest)
		return
	}

	if p.FitnessLevel != nil && !ValidFitnessLevel(*p.FitnessLevel) {
		http.Error(w, "invalid fitness level", http.StatusBadRequest)
		return
	}
	if p.Age != nil && *p.Age <= 0 {
		http.Error(w, "invalid age", http.StatusBadRequest)
		return
	}
	if (p.Weight != nil && *p.Weight <= 0) || (p.Height != nil && *p.Height <= 0) {
		http.Error(w, "invalid weight or height", http.StatusBadRequest)
		return
	}

	p.ID = user.ID
	if p.Email == nil && user.Email != "" {
		email := user.Email
		p.Email = &email
	}

	saved, err := h.repo.Upsert(ctx, p)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			http.Error(w, "invalid profile", http.StatusBadRequest)
			return
		}
		log.Errorf("upsert profile %s: %s", user.ID, err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, saved)
}
