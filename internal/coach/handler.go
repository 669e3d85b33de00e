package coach

import (
	"context"
	"net/http"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/fitness/challenges"
	"github.com/2beens/fitadapt/internal/telemetry/metrics"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"
	"github.com/2beens/fitadapt/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	PipelineChallenge     = "challenge"
	PipelineGroupTemplate = "group_template"

	GroupTemplateMessage = "Group challenge template generated! Review and customize before creating."
)

type challengeGenerator interface {
	Generate(ctx context.Context, token string) (*challenges.Challenge, error)
}

type templateGenerator interface {
	Generate(ctx context.Context, token string) (*GroupTemplate, error)
}

type ChallengeResponse struct {
	Success   bool                  `json:"success"`
	Challenge *challenges.Challenge `json:"challenge"`
}

type ChallengeErrorResponse struct {
	Error string `json:"error"`
}

type GroupTemplateResponse struct {
	Success           bool           `json:"success"`
	ChallengeTemplate *GroupTemplate `json:"challengeTemplate"`
	Message           string         `json:"message"`
}

type GroupTemplateErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Handler struct {
	challenges challengeGenerator
	templates  templateGenerator
	metrics    *metrics.Manager
}

func NewHandler(challenges challengeGenerator, templates templateGenerator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		challenges: challenges,
		templates:  templates,
		metrics:    metricsManager,
	}
}

// HandleGenerateChallenge serves POST /functions/v1/generate-challenge.
// Every failure is a 400 with {"error": "..."}.
func (h *Handler) HandleGenerateChallenge(w http.ResponseWriter, r *http.Request) {
	// a client that goes away does not abort the run, the result is just discarded
	ctx, span := tracing.GlobalTracer.Start(context.WithoutCancel(r.Context()), "handler.coach.generatechallenge")
	defer span.End()

	challenge, err := h.runChallenge(ctx, r)
	h.countRun(PipelineChallenge, err)
	if err != nil {
		log.Errorf("generate challenge: %s", err)
		pkg.WriteJSON(w, http.StatusBadRequest, ChallengeErrorResponse{Error: err.Error()})
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ChallengeResponse{
		Success:   true,
		Challenge: challenge,
	})
}

// HandleGenerateGroupChallenge serves POST /functions/v1/generate-group-challenge.
func (h *Handler) HandleGenerateGroupChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(context.WithoutCancel(r.Context()), "handler.coach.generategroupchallenge")
	defer span.End()

	template, err := h.runGroupTemplate(ctx, r)
	h.countRun(PipelineGroupTemplate, err)
	if err != nil {
		log.Errorf("generate group challenge template: %s", err)
		pkg.WriteJSON(w, http.StatusBadRequest, GroupTemplateErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	pkg.WriteJSON(w, http.StatusOK, GroupTemplateResponse{
		Success:           true,
		ChallengeTemplate: template,
		Message:           GroupTemplateMessage,
	})
}

func (h *Handler) runChallenge(ctx context.Context, r *http.Request) (*challenges.Challenge, error) {
	token, err := auth.BearerToken(r)
	if err != nil {
		return nil, unauthenticated(err)
	}
	return h.challenges.Generate(ctx, token)
}

func (h *Handler) runGroupTemplate(ctx context.Context, r *http.Request) (*GroupTemplate, error) {
	token, err := auth.BearerToken(r)
	if err != nil {
		return nil, unauthenticated(err)
	}
	return h.templates.Generate(ctx, token)
}

func (h *Handler) countRun(pipeline string, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.CounterPipelineRuns.WithLabelValues(pipeline, Outcome(err)).Inc()
}
