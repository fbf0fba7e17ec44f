package xtesting

import (
	"context"
	"testing"
	"time"
)

// cleanupTimeout is how long a context returned by [ContextForCleanup] remains
// valid after the test ends.
const cleanupTimeout = 3 * time.Second

// ContextForCleanup returns a context that can be used to release external
// resources after a test ends.
//
// It can be called at any time during the test, including within a cleanup
// function. The context is cancelled [cleanupTimeout] after the test ends.
func ContextForCleanup(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	if t.Context().Err() != nil {
		// t.Context() is cancelled just before cleanup functions run, so the
		// test has already ended.
		time.AfterFunc(cleanupTimeout, cancel)
		return ctx
	}

	t.Cleanup(func() {
		time.AfterFunc(cleanupTimeout, cancel)
	})

	return ctx
}
