package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "samadhan-setu/reel-api"

// GetTracer returns the tracer for the reel-api service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartPublishSpan starts a span for one upload pipeline run.
func StartPublishSpan(ctx context.Context) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "reel.publish",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// ReelAttributes returns common attributes for reel spans.
func ReelAttributes(id, submittedBy string, bytes int64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("reel.id", id),
		attribute.String("reel.submitted_by", submittedBy),
		attribute.Int64("reel.bytes", bytes),
	}
}

// AddStateTransition records a pipeline state transition on a span.
func AddStateTransition(span trace.Span, from, to string) {
	span.AddEvent("state.transition",
		trace.WithAttributes(
			attribute.String("state.from", from),
			attribute.String("state.to", to),
		),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
