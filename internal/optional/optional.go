// Package optional holds a nullable non-owning reference with fallback
// accessors.
package optional

import (
	"errors"

	"bindprop/internal/assert"
)

// ErrEmpty is the violation cause for reading an empty Ref.
var ErrEmpty = errors.New("optional value does not exist")

// Ref is an optional reference to a T owned elsewhere.
type Ref[T any] struct {
	ptr *T
}

// Of wraps p; a nil p is an empty Ref.
func Of[T any](p *T) Ref[T] { return Ref[T]{ptr: p} }

// None is the empty Ref.
func None[T any]() Ref[T] { return Ref[T]{} }

func (r Ref[T]) Exists() bool { return r.ptr != nil }

// Value returns the referenced value; the reference must exist.
func (r Ref[T]) Value() T {
	assert.Must(r.ptr != nil, ErrEmpty, "optional value has to exist to retrieve it")
	return *r.ptr
}

// Lookup returns the referenced value and whether it exists.
func (r Ref[T]) Lookup() (T, bool) {
	if r.ptr == nil {
		var zero T
		return zero, false
	}
	return *r.ptr, true
}

// ValueOr returns the referenced value or fallback.
func (r Ref[T]) ValueOr(fallback T) T {
	if r.ptr == nil {
		return fallback
	}
	return *r.ptr
}

// Pointer exposes the reference; nil when empty.
func (r Ref[T]) Pointer() *T { return r.ptr }

// Then runs fn with the value when it exists and returns r for chaining.
func (r Ref[T]) Then(fn func(*T)) Ref[T] {
	if r.ptr != nil {
		fn(r.ptr)
	}
	return r
}

// Otherwise runs fn when the reference is empty.
func (r Ref[T]) Otherwise(fn func()) Ref[T] {
	if r.ptr == nil {
		fn()
	}
	return r
}

// Map projects an existing value through fn.
func Map[T, U any](r Ref[T], fn func(*T) *U) Ref[U] {
	if r.ptr == nil {
		return Ref[U]{}
	}
	return Ref[U]{ptr: fn(r.ptr)}
}
