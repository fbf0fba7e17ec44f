package blob

import "context"

// WithNamePrefix returns a [Store] that adds the given prefix to all blob
// names, for example a directory or bucket "folder" shared by related sets.
func WithNamePrefix(s Store, prefix string) Store {
	return WithNameTransform(
		s,
		func(name string) string {
			return prefix + name
		},
	)
}

// WithNameTransform returns a [Store] that uses x to transform the name of
// each blob before it is passed to s.
func WithNameTransform(s Store, x func(string) string) Store {
	return &nameTransformStore{s, x}
}

type nameTransformStore struct {
	next      Store
	transform func(string) string
}

func (s *nameTransformStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := s.next.Load(ctx, s.transform(name))
	if IsNotFound(err) {
		// Report the name the caller asked for, not the transformed one.
		return nil, NotFoundError{Name: name}
	}
	return data, err
}

func (s *nameTransformStore) Save(ctx context.Context, name string, data []byte) error {
	return s.next.Save(ctx, s.transform(name), data)
}
