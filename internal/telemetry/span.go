package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Span is an operation started by [Recorder.StartSpan].
type Span struct {
	ctx  context.Context
	span trace.Span
	done func(context.Context)
}

// StartSpan starts a span named op. The operation is counted as in flight until
// [Span.End] is called.
func (r *Recorder) StartSpan(ctx context.Context, op string, a ...Attr) (context.Context, *Span) {
	ctx, span := r.tracer.Start(ctx, op, trace.WithAttributes(attrs(a)...))

	r.operations(ctx, 1)
	r.inFlight(ctx, 1)

	return ctx, &Span{
		ctx:  ctx,
		span: span,
		done: func(ctx context.Context) { r.inFlight(ctx, -1) },
	}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(a ...Attr) {
	s.span.SetAttributes(attrs(a)...)
}

// End ends the span.
func (s *Span) End() {
	s.done(s.ctx)
	s.span.End()
}
