package diskset

import (
	"github.com/dogmatiq/setkit/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option that changes the behavior of a [Set].
type Option func(*setOptions)

type setOptions struct {
	Provider telemetry.Provider
}

// WithTelemetry is an [Option] that configures the [Set] to record traces,
// metrics and logs using the given OpenTelemetry providers.
//
// Failures that are not returned to the caller are logged using l. Any nil
// provider is replaced with a no-op implementation.
func WithTelemetry(
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) Option {
	return func(opts *setOptions) {
		opts.Provider = telemetry.Provider{
			TracerProvider: p,
			MeterProvider:  m,
			LoggerProvider: l,
		}
	}
}
