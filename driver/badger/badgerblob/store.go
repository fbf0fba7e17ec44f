// Package badgerblob provides an implementation of [blob.Store] that persists
// to a BadgerDB database.
package badgerblob

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/internal/errorx"
)

// Store is an implementation of [blob.Store] that stores each blob as a
// BadgerDB value, keyed by the blob's name.
type Store struct {
	DB *badger.DB
}

// Load returns the content of the named blob.
func (s *Store) Load(ctx context.Context, name string) (data []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q", name)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = s.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return blob.NotFoundError{Name: name}
		}
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})

	return data, err
}

// Save replaces the content of the named blob.
func (s *Store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q", name)

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.DB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(name), data)
	})
}
