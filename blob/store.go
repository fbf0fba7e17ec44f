// Package blob defines a minimal contract for persisting named, opaque
// documents.
//
// A blob store holds the serialized form of each persisted set. Every
// operation reads or writes a document in its entirety; stores do not offer
// partial updates, locking or compare-and-swap semantics.
package blob

import "context"

// Store is a collection of named binary documents.
type Store interface {
	// Load returns the content of the named blob.
	//
	// It returns a [NotFoundError] if the blob does not exist. The returned
	// slice is owned by the caller.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the content of the named blob, creating it if it does
	// not exist.
	//
	// The store does not retain data after Save returns.
	Save(ctx context.Context, name string, data []byte) error
}

// Exists returns true if the named blob exists within s.
func Exists(ctx context.Context, s Store, name string) (bool, error) {
	_, err := s.Load(ctx, name)
	if err == nil {
		return true, nil
	}
	return false, IgnoreNotFound(err)
}
