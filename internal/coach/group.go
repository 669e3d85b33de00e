package coach

import (
	"context"

	"github.com/2beens/fitadapt/internal/completion"
	"github.com/2beens/fitadapt/internal/telemetry/metrics"
	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// GroupTemplateGenerator runs the group template pipeline. Nothing is persisted.
type GroupTemplateGenerator struct {
	verifier   verifier
	aggregator *Aggregator
	completer  completer
	metrics    *metrics.Manager
}

func NewGroupTemplateGenerator(verifier verifier, aggregator *Aggregator, completer completer, metrics *metrics.Manager) *GroupTemplateGenerator {
	return &GroupTemplateGenerator{
		verifier:   verifier,
		aggregator: aggregator,
		completer:  completer,
		metrics:    metrics,
	}
}

func (g *GroupTemplateGenerator) Generate(ctx context.Context, token string) (_ *GroupTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.group.generate")
	defer func() { tracing.EndSpan(span, err) }()

	user, err := authenticate(ctx, g.verifier, token)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user_id", user.ID.String()))

	groupCtx, err := g.aggregator.GroupContext(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	system, prompt := GroupTemplatePrompt(*groupCtx)

	raw, err := complete(ctx, g.completer, g.metrics, completion.Request{
		System:      system,
		User:        prompt,
		MaxTokens:   GroupTemplateMaxTokens,
		Temperature: completion.DefaultTemperature,
	})
	if err != nil {
		return nil, err
	}

	template, err := ParseGroupTemplate(raw)
	if err != nil {
		log.Debugf("unparsable group template completion: %s", raw)
		return nil, err
	}
	return template, nil
}
