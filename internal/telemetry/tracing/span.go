package tracing

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EndSpan records err (if any) on the span and ends it.
// Meant to be deferred with a named error return:
//
//	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recent")
//	defer func() { tracing.EndSpan(span, err) }()
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
