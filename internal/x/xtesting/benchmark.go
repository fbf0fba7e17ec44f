package xtesting

import (
	"context"
	"testing"
	"time"
)

// Steps are the phases of a benchmark run by [Benchmark]. Only Run is timed.
// Any step other than Run may be nil.
type Steps struct {
	// Setup is called once, before the first iteration.
	Setup func(context.Context) error

	// Before is called before each iteration.
	Before func(context.Context) error

	// Run is the code under measurement.
	Run func(context.Context) error
}

// Benchmark runs s.Run once per iteration of b.
//
// It skips the benchmark if b.N grows past the point where the measured code
// is too fast to time meaningfully.
func Benchmark(b *testing.B, s Steps) {
	if b.N >= 1_000_000 {
		b.Skipf("too many iterations (%d) to measure meaningfully", b.N)
	}

	ctx := b.Context()

	untimed := func(fn func(context.Context) error) {
		if fn == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := fn(ctx); err != nil {
			b.Fatal(err)
		}
	}

	untimed(s.Setup)

	for b.Loop() {
		b.StopTimer()
		untimed(s.Before)
		b.StartTimer()

		if err := s.Run(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
