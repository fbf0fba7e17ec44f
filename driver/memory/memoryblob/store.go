// Package memoryblob provides an in-memory implementation of [blob.Store].
package memoryblob

import (
	"bytes"
	"context"
	"sync"

	"github.com/dogmatiq/setkit/blob"
)

// Store is an in-memory implementation of [blob.Store].
//
// The zero-value is ready to use.
type Store struct {
	blobs sync.Map // map[string][]byte
}

// Load returns the content of the named blob.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, ok := s.blobs.Load(name)
	if !ok {
		return nil, blob.NotFoundError{Name: name}
	}

	return bytes.Clone(data.([]byte)), nil
}

// Save replaces the content of the named blob.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if data == nil {
		data = []byte{}
	}

	s.blobs.Store(name, bytes.Clone(data))

	return nil
}
