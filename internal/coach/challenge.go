package coach

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitadapt/internal/auth"
	"github.com/2beens/fitadapt/internal/completion"
	"github.com/2beens/fitadapt/internal/fitness"
	"github.com/2beens/fitadapt/internal/fitness/challenges"
	"github.com/2beens/fitadapt/internal/telemetry/metrics"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ChallengeGenerator runs the individual challenge pipeline:
// authenticate, aggregate, compose, complete, parse, persist.
type ChallengeGenerator struct {
	verifier   verifier
	aggregator *Aggregator
	completer  completer
	challenges challengeStore
	metrics    *metrics.Manager
	now        func() time.Time
}

type ChallengeGeneratorParams struct {
	Verifier   verifier
	Aggregator *Aggregator
	Completer  completer
	Challenges challengeStore
	Metrics    *metrics.Manager
	// Now defaults to time.Now. Its location decides what "today" is.
	Now func() time.Time
}

func NewChallengeGenerator(params ChallengeGeneratorParams) *ChallengeGenerator {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &ChallengeGenerator{
		verifier:   params.Verifier,
		aggregator: params.Aggregator,
		completer:  params.Completer,
		challenges: params.Challenges,
		metrics:    params.Metrics,
		now:        now,
	}
}

func (g *ChallengeGenerator) Generate(ctx context.Context, token string) (_ *challenges.Challenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.challenge.generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	user, err := authenticate(ctx, g.verifier, token)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user_id", user.ID.String()))

	challengeCtx := g.aggregator.ChallengeContext(ctx, user.ID)
	system, prompt := ChallengePrompt(challengeCtx)

	raw, err := complete(ctx, g.completer, g.metrics, completion.Request{
		System:      system,
		User:        prompt,
		MaxTokens:   ChallengeMaxTokens,
		Temperature: completion.DefaultTemperature,
	})
	if err != nil {
		return nil, err
	}

	payload, err := ParseChallenge(raw)
	if err != nil {
		log.Debugf("unparsable challenge completion: %s", raw)
		return nil, err
	}

	now := g.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, payload.Days())

	stored, err := g.challenges.Add(ctx, challenges.Challenge{
		UserID:        user.ID,
		Title:         payload.Title,
		Description:   payload.Description,
		Difficulty:    payload.Difficulty,
		StartDate:     fitness.Today(start),
		EndDate:       fitness.Today(end),
		Completed:     false,
		AIGenerated:   true,
		ChallengeData: payload.ChallengeData,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPersistenceFailed, err)
	}

	return stored, nil
}

func authenticate(ctx context.Context, v verifier, token string) (*auth.User, error) {
	if token == "" {
		return nil, unauthenticated(auth.ErrMissingToken)
	}
	user, err := v.Verify(ctx, token)
	if err != nil {
		return nil, unauthenticated(err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func complete(ctx context.Context, c completer, m *metrics.Manager, req completion.Request) (string, error) {
	start := time.Now()
	raw, err := c.Complete(ctx, req)
	if m != nil {
		m.HistogramCompletionDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			m.CounterCompletionErr.Inc()
		}
	}
	if err != nil {
		return "", completionError(err)
	}
	return raw, nil
}
