// Package staticset provides set operations over immutable slices.
//
// A set is represented as a []T containing no two equal values. No function in
// this package modifies its arguments. Every slice it returns is newly
// allocated, so a caller may retain, alias or modify an input without
// affecting any result, and vice versa.
package staticset

import "slices"

// New returns a set containing the given values.
//
// Duplicate values are discarded; the first occurrence of each value
// determines its position.
func New[T comparable](values ...T) []T {
	s := make([]T, 0, len(values))
	for _, v := range values {
		if !slices.Contains(s, v) {
			s = append(s, v)
		}
	}
	return s
}

// Add returns a set containing the members of s and v.
//
// If v is already a member of s the result is a copy of s.
func Add[T comparable](s []T, v T) []T {
	if slices.Contains(s, v) {
		return clone(s)
	}

	r := make([]T, len(s), len(s)+1)
	copy(r, s)
	return append(r, v)
}

// Remove returns a set containing the members of s other than v.
func Remove[T comparable](s []T, v T) []T {
	r := make([]T, 0, len(s))
	for _, x := range s {
		if x != v {
			r = append(r, x)
		}
	}
	return r
}

// Has returns true if v is a member of s.
func Has[T comparable](s []T, v T) bool {
	return slices.Contains(s, v)
}

// Len returns the number of members in s.
func Len[T comparable](s []T) int {
	return len(s)
}

// IsEmpty returns true if s has no members.
func IsEmpty[T comparable](s []T) bool {
	return len(s) == 0
}

// Union returns a set containing the members of a followed by those members
// of b that are not in a.
func Union[T comparable](a, b []T) []T {
	r := make([]T, len(a), len(a)+len(b))
	copy(r, a)

	for _, v := range b {
		if !slices.Contains(a, v) {
			r = append(r, v)
		}
	}

	return r
}

// Intersection returns a set containing the members of a that are also
// members of b.
func Intersection[T comparable](a, b []T) []T {
	r := []T{}
	for _, v := range a {
		if slices.Contains(b, v) {
			r = append(r, v)
		}
	}
	return r
}

// Difference returns a set containing the members of a that are not members
// of b.
func Difference[T comparable](a, b []T) []T {
	r := []T{}
	for _, v := range a {
		if !slices.Contains(b, v) {
			r = append(r, v)
		}
	}
	return r
}

// IsSubsetOf returns true if every member of a is also a member of b.
func IsSubsetOf[T comparable](a, b []T) bool {
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}

// Equal returns true if a and b have the same members, regardless of order.
func Equal[T comparable](a, b []T) bool {
	return len(a) == len(b) && IsSubsetOf(a, b)
}

// clone returns a non-nil copy of s.
func clone[T any](s []T) []T {
	r := make([]T, len(s))
	copy(r, s)
	return r
}
