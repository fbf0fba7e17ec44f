// Package diskset provides set operations over persisted JSON arrays.
//
// Each set lives in a named blob within a [blob.Store]. Every operation loads
// the entire blob, optionally modifies it, and saves it back. No state is kept
// in memory between operations.
//
// Operations do not return errors. A failure to load a blob is treated as an
// empty set, a failure to save one is reported as a false result, and each
// failure is logged via the OpenTelemetry logger configured using
// [WithTelemetry]. A blob that does not exist is an empty set and is not
// considered a failure.
//
// Operations are not atomic. If two callers modify the same set concurrently,
// one of the modifications may be lost.
package diskset

import (
	"context"
	"slices"

	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/internal/telemetry"
	"github.com/dogmatiq/setkit/marshaler"
)

// Set performs set operations on JSON arrays of T persisted in a
// [blob.Store].
type Set[T comparable] struct {
	store blob.Store
	codec marshaler.Marshaler[[]T]
	telem *telemetry.Recorder
}

// New returns a [Set] that persists sets in the given store.
func New[T comparable](store blob.Store, options ...Option) *Set[T] {
	if store == nil {
		panic("store must not be nil")
	}

	var opts setOptions
	for _, opt := range options {
		opt(&opts)
	}

	return &Set[T]{
		store: store,
		codec: marshaler.NewJSONArray[T](),
		telem: opts.Provider.Recorder(
			"github.com/dogmatiq/setkit/diskset",
			telemetry.Type("diskset.element", *new(T)),
		),
	}
}

// Initialize replaces the content of the named set with the given values.
//
// Duplicate values are discarded. It returns false if the set could not be
// saved.
func (s *Set[T]) Initialize(ctx context.Context, name string, values ...T) bool {
	ctx, span := s.startSpan(ctx, "diskset.initialize", name)
	defer span.End()

	return s.save(ctx, name, unique(values))
}

// Load returns the members of the named set.
//
// It returns an empty set if the set does not exist, or if it can not be
// loaded.
func (s *Set[T]) Load(ctx context.Context, name string) []T {
	ctx, span := s.startSpan(ctx, "diskset.load", name)
	defer span.End()

	members, _ := s.load(ctx, name)
	return members
}

// Save replaces the content of the named set with the given members.
//
// Duplicate values are discarded. It returns false if the set could not be
// saved.
func (s *Set[T]) Save(ctx context.Context, name string, members []T) bool {
	ctx, span := s.startSpan(ctx, "diskset.save", name)
	defer span.End()

	return s.save(ctx, name, unique(members))
}

// Add adds v to the named set.
//
// It returns true if v was added. It returns false if v was already a member,
// or if the set could not be loaded or saved. The set is not saved if v is
// already a member.
func (s *Set[T]) Add(ctx context.Context, name string, v T) bool {
	ctx, span := s.startSpan(ctx, "diskset.add", name)
	defer span.End()

	members, ok := s.load(ctx, name)
	if !ok || slices.Contains(members, v) {
		return false
	}

	return s.save(ctx, name, append(members, v))
}

// Remove removes v from the named set.
//
// It returns true if v was removed. It returns false if v was not a member, or
// if the set could not be loaded or saved. The set is not saved if v is not a
// member.
func (s *Set[T]) Remove(ctx context.Context, name string, v T) bool {
	ctx, span := s.startSpan(ctx, "diskset.remove", name)
	defer span.End()

	members, ok := s.load(ctx, name)
	if !ok {
		return false
	}

	i := slices.Index(members, v)
	if i == -1 {
		return false
	}

	return s.save(ctx, name, slices.Delete(members, i, i+1))
}

// Contains returns true if v is a member of the named set.
func (s *Set[T]) Contains(ctx context.Context, name string, v T) bool {
	return slices.Contains(s.Load(ctx, name), v)
}

// Size returns the number of members in the named set.
func (s *Set[T]) Size(ctx context.Context, name string) int {
	return len(s.Load(ctx, name))
}

// IsEmpty returns true if the named set has no members.
func (s *Set[T]) IsEmpty(ctx context.Context, name string) bool {
	return s.Size(ctx, name) == 0
}

// Exists returns true if the named set has been saved.
//
// It returns false if existence can not be determined.
func (s *Set[T]) Exists(ctx context.Context, name string) bool {
	ctx, span := s.startSpan(ctx, "diskset.exists", name)
	defer span.End()

	ok, err := blob.Exists(ctx, s.store, name)
	if err != nil {
		s.telem.Error(ctx, "diskset.exists.error", err, telemetry.String("diskset.name", name))
		return false
	}

	return ok
}

// Clear removes all members from the named set.
//
// It returns false if the set could not be saved.
func (s *Set[T]) Clear(ctx context.Context, name string) bool {
	ctx, span := s.startSpan(ctx, "diskset.clear", name)
	defer span.End()

	return s.save(ctx, name, nil)
}

// UnionInto saves the union of the sets named a and b to the set named dest.
//
// The result contains the members of a followed by those members of b that
// are not in a. dest may be the same as a or b. It returns false, without
// saving dest, if either a or b could not be loaded.
func (s *Set[T]) UnionInto(ctx context.Context, a, b, dest string) bool {
	return s.combine(ctx, "diskset.union", a, b, dest, func(a, b []T) []T {
		for _, v := range b {
			if !slices.Contains(a, v) {
				a = append(a, v)
			}
		}
		return a
	})
}

// IntersectInto saves the intersection of the sets named a and b to the set
// named dest.
//
// dest may be the same as a or b. It returns false, without saving dest, if
// either a or b could not be loaded.
func (s *Set[T]) IntersectInto(ctx context.Context, a, b, dest string) bool {
	return s.combine(ctx, "diskset.intersect", a, b, dest, func(a, b []T) []T {
		return slices.DeleteFunc(a, func(v T) bool {
			return !slices.Contains(b, v)
		})
	})
}

// DifferenceInto saves the members of the set named a that are not members of
// the set named b to the set named dest.
//
// dest may be the same as a or b. It returns false, without saving dest, if
// either a or b could not be loaded.
func (s *Set[T]) DifferenceInto(ctx context.Context, a, b, dest string) bool {
	return s.combine(ctx, "diskset.difference", a, b, dest, func(a, b []T) []T {
		return slices.DeleteFunc(a, func(v T) bool {
			return slices.Contains(b, v)
		})
	})
}

// IsSubsetOf returns true if every member of the set named a is also a member
// of the set named b.
func (s *Set[T]) IsSubsetOf(ctx context.Context, a, b string) bool {
	members := s.Load(ctx, b)

	for _, v := range s.Load(ctx, a) {
		if !slices.Contains(members, v) {
			return false
		}
	}

	return true
}

func (s *Set[T]) combine(
	ctx context.Context,
	op string,
	a, b, dest string,
	fn func(a, b []T) []T,
) bool {
	ctx, span := s.startSpan(ctx, op, dest)
	defer span.End()

	span.SetAttributes(
		telemetry.String("diskset.operand.a", a),
		telemetry.String("diskset.operand.b", b),
	)

	left, ok := s.load(ctx, a)
	if !ok {
		return false
	}

	right, ok := s.load(ctx, b)
	if !ok {
		return false
	}

	return s.save(ctx, dest, fn(left, right))
}

func (s *Set[T]) startSpan(ctx context.Context, op, name string) (context.Context, *telemetry.Span) {
	return s.telem.StartSpan(ctx, op, telemetry.String("diskset.name", name))
}

// load returns the members of the named set. ok is false if the set exists but
// could not be loaded, in which case members is empty.
func (s *Set[T]) load(ctx context.Context, name string) (members []T, ok bool) {
	data, err := s.store.Load(ctx, name)
	if blob.IsNotFound(err) {
		return []T{}, true
	}
	if err != nil {
		s.telem.Error(ctx, "diskset.load.error", err, telemetry.String("diskset.name", name))
		return []T{}, false
	}

	members, err = s.codec.Unmarshal(data)
	if err != nil {
		s.telem.Error(
			ctx,
			"diskset.parse.error",
			ParseError{name, err},
			telemetry.String("diskset.name", name),
		)
		return []T{}, false
	}

	distinct := unique(members)
	if n := len(members) - len(distinct); n != 0 {
		s.telem.Warn(
			ctx,
			"diskset.load.duplicates",
			"discarded duplicate values in persisted set",
			telemetry.String("diskset.name", name),
			telemetry.Int("diskset.duplicates", n),
		)
	}

	return distinct, true
}

// save replaces the content of the named set with members, which must not
// contain duplicates.
func (s *Set[T]) save(ctx context.Context, name string, members []T) bool {
	data, err := s.marshal(name, members)
	if err != nil {
		s.telem.Error(ctx, "diskset.marshal.error", err, telemetry.String("diskset.name", name))
		return false
	}

	if err := s.store.Save(ctx, name, data); err != nil {
		s.telem.Error(ctx, "diskset.save.error", err, telemetry.String("diskset.name", name))
		return false
	}

	s.telem.Info(
		ctx,
		"diskset.save.ok",
		"saved set",
		telemetry.String("diskset.name", name),
		telemetry.Int("diskset.size", len(members)),
	)

	return true
}

// marshal encodes members, failing if the encoded form does not decode to
// exactly the same values.
func (s *Set[T]) marshal(name string, members []T) ([]byte, error) {
	data, err := s.codec.Marshal(members)
	if err != nil {
		return nil, err
	}

	decoded, err := s.codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	if !slices.Equal(decoded, members) {
		return nil, EncodingError{name}
	}

	return data, nil
}

// unique returns a non-nil slice containing the distinct values of values, in
// order of first occurrence.
func unique[T comparable](values []T) []T {
	r := make([]T, 0, len(values))
	for _, v := range values {
		if !slices.Contains(r, v) {
			r = append(r, v)
		}
	}
	return r
}
