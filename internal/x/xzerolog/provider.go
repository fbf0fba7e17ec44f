// Package xzerolog writes OpenTelemetry log records to a zerolog logger.
package xzerolog

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
)

// NewLoggerProvider returns a [log.LoggerProvider] that writes each record
// emitted by its loggers to z.
//
// The record's "message" attribute becomes the zerolog message, its event
// name is written to the "event" field and the remaining attributes and map
// body entries are written as fields.
func NewLoggerProvider(z zerolog.Logger) log.LoggerProvider {
	return &loggerProvider{z: z}
}

type loggerProvider struct {
	embedded.LoggerProvider
	z zerolog.Logger
}

func (p *loggerProvider) Logger(name string, _ ...log.LoggerOption) log.Logger {
	return &logger{
		z: p.z.With().Str("scope", name).Logger(),
	}
}

type logger struct {
	embedded.Logger
	z zerolog.Logger
}

func (l *logger) Enabled(_ context.Context, p log.EnabledParameters) bool {
	lvl := Level(p.Severity)
	return lvl >= l.z.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (l *logger) Emit(_ context.Context, rec log.Record) {
	e := l.z.WithLevel(Level(rec.Severity()))
	if e == nil {
		return
	}

	if name := rec.EventName(); name != "" {
		e = e.Str("event", name)
	}

	var message string
	rec.WalkAttributes(func(kv log.KeyValue) bool {
		if kv.Key == "message" {
			message = kv.Value.AsString()
		} else {
			e = field(e, kv.Key, kv.Value)
		}
		return true
	})

	if body := rec.Body(); body.Kind() == log.KindMap {
		for _, kv := range body.AsMap() {
			e = field(e, kv.Key, kv.Value)
		}
	}

	e.Msg(message)
}

// Level returns the zerolog level that corresponds to an OpenTelemetry
// severity.
func Level(s log.Severity) zerolog.Level {
	switch {
	case s == log.SeverityUndefined:
		return zerolog.NoLevel
	case s < log.SeverityDebug:
		return zerolog.TraceLevel
	case s < log.SeverityInfo:
		return zerolog.DebugLevel
	case s < log.SeverityWarn:
		return zerolog.InfoLevel
	case s < log.SeverityError:
		return zerolog.WarnLevel
	case s < log.SeverityFatal:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

func field(e *zerolog.Event, k string, v log.Value) *zerolog.Event {
	switch v.Kind() {
	case log.KindBool:
		return e.Bool(k, v.AsBool())
	case log.KindInt64:
		return e.Int64(k, v.AsInt64())
	case log.KindFloat64:
		return e.Float64(k, v.AsFloat64())
	case log.KindString:
		return e.Str(k, v.AsString())
	case log.KindBytes:
		return e.Bytes(k, v.AsBytes())
	case log.KindMap:
		d := zerolog.Dict()
		for _, kv := range v.AsMap() {
			d = field(d, kv.Key, kv.Value)
		}
		return e.Dict(k, d)
	default:
		return e.Str(k, v.String())
	}
}
