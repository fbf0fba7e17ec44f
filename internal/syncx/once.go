// Package syncx contains synchronization primitives.
package syncx

import (
	"context"
	"sync"
	"sync/atomic"
)

// SucceedOnce runs a function until it succeeds once.
//
// Drivers use it to provision remote resources, such as an S3 bucket or a
// DynamoDB table, the first time a store is used.
type SucceedOnce struct {
	m  sync.Mutex
	ok atomic.Bool
}

// Do calls fn unless a previous call to fn has returned nil.
func (o *SucceedOnce) Do(ctx context.Context, fn func(context.Context) error) error {
	if o.ok.Load() {
		return nil
	}

	o.m.Lock()
	defer o.m.Unlock()

	if o.ok.Load() {
		return nil
	}

	err := fn(ctx)
	o.ok.Store(err == nil)
	return err
}
