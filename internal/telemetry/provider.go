// Package telemetry records traces, metrics and logs via OpenTelemetry.
package telemetry

import (
	"runtime/debug"
	"sync"

	"go.opentelemetry.io/otel/log"
	nooplog "go.opentelemetry.io/otel/log/noop"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const modulePath = "github.com/dogmatiq/setkit"

// Provider is a set of OpenTelemetry providers. A nil provider is replaced
// with a no-op implementation.
type Provider struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	LoggerProvider log.LoggerProvider
}

// Recorder records telemetry on behalf of a single package.
type Recorder struct {
	tracer trace.Tracer
	meter  metric.Meter
	logger log.Logger

	errors     Instrument[int64]
	operations Instrument[int64]
	inFlight   Instrument[int64]
}

// Recorder returns a [Recorder] for the package at path pkg. The attributes
// are attached to the instrumentation scope.
func (p *Provider) Recorder(pkg string, a ...Attr) *Recorder {
	var (
		tp = p.TracerProvider
		mp = p.MeterProvider
		lp = p.LoggerProvider
	)

	if tp == nil {
		tp = nooptrace.NewTracerProvider()
	}
	if mp == nil {
		mp = noopmetric.NewMeterProvider()
	}
	if lp == nil {
		lp = nooplog.NewLoggerProvider()
	}

	scope := attrs(a)
	version := moduleVersion()

	r := &Recorder{
		tracer: tp.Tracer(
			pkg,
			trace.WithInstrumentationVersion(version),
			trace.WithInstrumentationAttributes(scope...),
		),
		meter: mp.Meter(
			pkg,
			metric.WithInstrumentationVersion(version),
			metric.WithInstrumentationAttributes(scope...),
		),
		logger: lp.Logger(
			pkg,
			log.WithInstrumentationVersion(version),
			log.WithInstrumentationAttributes(scope...),
		),
	}

	r.errors = r.Counter("errors", "{error}", "Errors encountered.")
	r.operations = r.Counter("operations", "{operation}", "Operations started.")
	r.inFlight = r.UpDownCounter("operations.in_flight", "{operation}", "Operations in progress.")

	return r
}

// moduleVersion returns the version of this module as recorded in the build
// info of the running binary.
var moduleVersion = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Path == modulePath && info.Main.Version != "" {
		return info.Main.Version
	}

	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}

	return "unknown"
})
