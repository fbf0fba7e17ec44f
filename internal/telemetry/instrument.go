package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Instrument records a single measurement.
type Instrument[T int64 | float64] func(ctx context.Context, v T, attrs ...Attr)

// Counter returns an instrument for a value that only ever increases.
func (r *Recorder) Counter(name, unit, desc string) Instrument[int64] {
	c := must(r.meter.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(desc)))
	return func(ctx context.Context, v int64, a ...Attr) {
		c.Add(ctx, v, metric.WithAttributes(attrs(a)...))
	}
}

// UpDownCounter returns an instrument for a value that may increase or
// decrease.
func (r *Recorder) UpDownCounter(name, unit, desc string) Instrument[int64] {
	c := must(r.meter.Int64UpDownCounter(name, metric.WithUnit(unit), metric.WithDescription(desc)))
	return func(ctx context.Context, v int64, a ...Attr) {
		c.Add(ctx, v, metric.WithAttributes(attrs(a)...))
	}
}

// Histogram returns an instrument that records a distribution of values.
func (r *Recorder) Histogram(name, unit, desc string) Instrument[int64] {
	h := must(r.meter.Int64Histogram(name, metric.WithUnit(unit), metric.WithDescription(desc)))
	return func(ctx context.Context, v int64, a ...Attr) {
		h.Record(ctx, v, metric.WithAttributes(attrs(a)...))
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
