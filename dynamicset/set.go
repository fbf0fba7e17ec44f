// Package dynamicset provides a mutable, in-memory set of unique values.
package dynamicset

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Set is a mutable collection of unique values of type T.
//
// Members are kept in insertion order, although the order carries no meaning
// in terms of set semantics. Membership is determined by the == operator.
//
// A Set is not safe for concurrent mutation. The zero-value is an empty set
// ready to use.
type Set[T comparable] struct {
	members []T
}

// New returns a set containing the given values.
//
// Duplicate values are discarded; the first occurrence of each value
// determines its position.
func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add adds v to the set. It returns true if v was added, or false if it was
// already a member.
func (s *Set[T]) Add(v T) bool {
	if s.Has(v) {
		return false
	}

	s.members = append(s.members, v)
	return true
}

// Remove removes v from the set. It returns true if v was removed, or false if
// it was not a member.
func (s *Set[T]) Remove(v T) bool {
	i := slices.Index(s.members, v)
	if i == -1 {
		return false
	}

	s.members = slices.Delete(s.members, i, i+1)
	return true
}

// Clear removes all members from the set.
func (s *Set[T]) Clear() {
	s.members = nil
}

// Has returns true if v is a member of the set.
func (s *Set[T]) Has(v T) bool {
	return slices.Contains(s.members, v)
}

// Len returns the number of members in the set.
func (s *Set[T]) Len() int {
	return len(s.members)
}

// IsEmpty returns true if the set has no members.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Members returns a copy of the set's members in insertion order.
func (s *Set[T]) Members() []T {
	return slices.Clone(s.members)
}

// All returns an iterator over the set's members in insertion order.
//
// The set must not be modified while the iterator is in use.
func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.members)
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		members: slices.Clone(s.members),
	}
}

// Union returns a new set containing the members of s followed by those
// members of other that are not in s.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	r := s.Clone()
	for _, v := range other.members {
		r.Add(v)
	}
	return r
}

// Intersection returns a new set containing the members of s that are also
// members of other.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	r := &Set[T]{}
	for _, v := range s.members {
		if other.Has(v) {
			r.members = append(r.members, v)
		}
	}
	return r
}

// Difference returns a new set containing the members of s that are not
// members of other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	r := &Set[T]{}
	for _, v := range s.members {
		if !other.Has(v) {
			r.members = append(r.members, v)
		}
	}
	return r
}

// IsSubsetOf returns true if every member of s is also a member of other.
//
// The empty set is a subset of every set.
func (s *Set[T]) IsSubsetOf(other *Set[T]) bool {
	for _, v := range s.members {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Equal returns true if s and other have the same members, regardless of
// order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.Len() == other.Len() && s.IsSubsetOf(other)
}

// String returns a human-readable representation of the set, such as
// "Set[1 2 3]".
func (s *Set[T]) String() string {
	var w strings.Builder

	w.WriteString("Set[")
	for i, v := range s.members {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprint(&w, v)
	}
	w.WriteByte(']')

	return w.String()
}
