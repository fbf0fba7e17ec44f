package blob

import (
	"context"

	"github.com/dogmatiq/setkit/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a [Store] that adds telemetry to s.
func WithTelemetry(
	s Store,
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) Store {
	provider := telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  m,
		LoggerProvider: l,
	}

	telem := provider.Recorder(
		"github.com/dogmatiq/setkit/blob",
		telemetry.Type("blob.store", s),
		telemetry.String("blob.handle", telemetry.HandleID()),
	)

	return &instrumentedStore{
		Next:      s,
		Telemetry: telem,
		BlobIO:    telem.Counter("blob.io", "By", "The cumulative size of the blobs that have been loaded and saved."),
		BlobSize:  telem.Histogram("blob.size", "By", "The sizes of the blobs that have been loaded and saved."),
	}
}

// instrumentedStore is a decorator that adds instrumentation to a [Store].
type instrumentedStore struct {
	Next      Store
	Telemetry *telemetry.Recorder

	BlobIO   telemetry.Instrument[int64]
	BlobSize telemetry.Instrument[int64]
}

func (s *instrumentedStore) Load(ctx context.Context, name string) ([]byte, error) {
	ctx, span := s.Telemetry.StartSpan(
		ctx,
		"blob.load",
		telemetry.String("blob.name", name),
	)
	defer span.End()

	data, err := s.Next.Load(ctx, name)
	if IsNotFound(err) {
		span.SetAttributes(telemetry.Bool("blob.exists", false))
		s.Telemetry.Info(ctx, "blob.load.not_found", "blob does not exist")
		return nil, err
	}
	if err != nil {
		s.Telemetry.Error(ctx, "blob.load.error", err)
		return nil, err
	}

	size := int64(len(data))
	s.BlobIO(ctx, size, telemetry.ReadDirection)
	s.BlobSize(ctx, size, telemetry.ReadDirection)

	span.SetAttributes(
		telemetry.Bool("blob.exists", true),
		telemetry.Int("blob.size", size),
	)

	s.Telemetry.Info(ctx, "blob.load.ok", "loaded blob")

	return data, nil
}

func (s *instrumentedStore) Save(ctx context.Context, name string, data []byte) error {
	size := int64(len(data))

	ctx, span := s.Telemetry.StartSpan(
		ctx,
		"blob.save",
		telemetry.String("blob.name", name),
		telemetry.Int("blob.size", size),
	)
	defer span.End()

	s.BlobIO(ctx, size, telemetry.WriteDirection)
	s.BlobSize(ctx, size, telemetry.WriteDirection)

	if err := s.Next.Save(ctx, name, data); err != nil {
		s.Telemetry.Error(ctx, "blob.save.error", err)
		return err
	}

	s.Telemetry.Info(ctx, "blob.save.ok", "saved blob")

	return nil
}
