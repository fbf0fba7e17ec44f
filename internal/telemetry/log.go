package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

// Info records an informational event.
func (r *Recorder) Info(ctx context.Context, event, message string, a ...Attr) {
	r.emit(ctx, log.SeverityInfo, event, message, nil, a)
}

// Warn records a warning. The span's status is left unchanged.
func (r *Recorder) Warn(ctx context.Context, event, message string, a ...Attr) {
	r.emit(ctx, log.SeverityWarn, event, message, nil, a)
}

// Error records err as a failure of the current span and counts it in the
// "errors" metric.
func (r *Recorder) Error(ctx context.Context, event string, err error, a ...Attr) {
	r.emit(ctx, log.SeverityError, event, err.Error(), err, a)
	r.errors(ctx, 1)

	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// emit writes an event to both the log and the span in ctx.
func (r *Recorder) emit(
	ctx context.Context,
	sev log.Severity,
	event, message string,
	err error,
	a []Attr,
) {
	if !r.logger.Enabled(ctx, log.EnabledParameters{Severity: sev}) {
		return
	}

	trace.SpanFromContext(ctx).AddEvent(
		event,
		trace.WithAttributes(attribute.String("message", message)),
		trace.WithAttributes(attrs(a)...),
	)

	var rec log.Record
	rec.SetSeverity(sev)
	rec.SetEventName(event)
	rec.AddAttributes(log.String("message", message))

	if err != nil {
		rec.AddAttributes(log.String("error", err.Error()))
	}

	if len(a) > 0 {
		rec.SetBody(log.MapValue(logAttrs(a)...))
	}

	r.logger.Emit(ctx, rec)
}
