// Package pebbleblob provides an implementation of [blob.Store] that persists
// to a Pebble database.
package pebbleblob

import (
	"bytes"
	"context"
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/internal/errorx"
)

// Store is an implementation of [blob.Store] that stores each blob as a Pebble
// value, keyed by the blob's name.
//
// Each save is synced to disk before it returns.
type Store struct {
	DB *pebble.DB
}

// Load returns the content of the named blob.
func (s *Store) Load(ctx context.Context, name string) (_ []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q", name)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, closer, err := s.DB.Get([]byte(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, blob.NotFoundError{Name: name}
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	// value is only valid until closer is closed.
	data := bytes.Clone(value)
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// Save replaces the content of the named blob.
func (s *Store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q", name)

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.DB.Set([]byte(name), data, pebble.Sync)
}
