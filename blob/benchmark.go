package blob

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/dogmatiq/setkit/internal/x/xtesting"
)

// RunBenchmarks runs benchmarks against a [Store] implementation.
func RunBenchmarks(b *testing.B, store Store) {
	const size = 1024

	var (
		name string
		data = make([]byte, size)
	)

	fresh := func(context.Context) error {
		name = xtesting.SequentialName("blob")
		return nil
	}

	existing := func(ctx context.Context) error {
		name = xtesting.SequentialName("blob")
		rand.Read(data)
		return store.Save(ctx, name, data)
	}

	randomize := func(context.Context) error {
		rand.Read(data)
		return nil
	}

	load := func(ctx context.Context) error {
		_, err := store.Load(ctx, name)
		return err
	}

	save := func(ctx context.Context) error {
		return store.Save(ctx, name, data)
	}

	b.Run("Load", func(b *testing.B) {
		b.Run("non-existent blob", func(b *testing.B) {
			xtesting.Benchmark(b, xtesting.Steps{
				Before: fresh,
				Run: func(ctx context.Context) error {
					return IgnoreNotFound(load(ctx))
				},
			})
		})

		b.Run("existing blob", func(b *testing.B) {
			xtesting.Benchmark(b, xtesting.Steps{
				Setup: existing,
				Run:   load,
			})
		})
	})

	b.Run("Save", func(b *testing.B) {
		b.Run("new blob", func(b *testing.B) {
			xtesting.Benchmark(b, xtesting.Steps{
				Before: func(ctx context.Context) error {
					_ = fresh(ctx)
					return randomize(ctx)
				},
				Run: save,
			})
		})

		b.Run("existing blob", func(b *testing.B) {
			xtesting.Benchmark(b, xtesting.Steps{
				Setup:  existing,
				Before: randomize,
				Run:    save,
			})
		})
	})
}
