// Package redisblob provides an implementation of [blob.Store] that persists
// to Redis.
package redisblob

import (
	"context"
	"errors"

	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/internal/errorx"
	"github.com/redis/go-redis/v9"
)

// Store is an implementation of [blob.Store] that stores each blob as a Redis
// string, keyed by the blob's name.
//
// Use [blob.WithNamePrefix] to share a Redis database with other
// applications.
type Store struct {
	Client redis.Cmdable
}

// Load returns the content of the named blob.
func (s *Store) Load(ctx context.Context, name string) (_ []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q", name)

	data, err := s.Client.Get(ctx, name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, blob.NotFoundError{Name: name}
	}

	return data, err
}

// Save replaces the content of the named blob.
func (s *Store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q", name)

	if data == nil {
		data = []byte{}
	}

	return s.Client.Set(ctx, name, data, 0).Err()
}
