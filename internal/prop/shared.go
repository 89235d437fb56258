package prop

import "bindprop/internal/assert"

// Shared is a read-write accessor over a shared handle. Every holder of the
// handle sees the same T; the accessor governs lifetime only and does not
// synchronise concurrent writers.
type Shared[T, O any] struct {
	Binding[O]
	readTag
	writeTag
	handle *T
}

// NewShared returns an unbound accessor holding h (which may be nil).
func NewShared[T, O any](h *T) Shared[T, O] {
	return Shared[T, O]{handle: h}
}

// Get returns the handle.
func (s *Shared[T, O]) Get() *T {
	return s.handle
}

// Set replaces the handle.
func (s *Shared[T, O]) Set(h *T) {
	s.handle = h
}

// Chain replaces the handle and returns the bound owner.
func (s *Shared[T, O]) Chain(h *T) *O {
	owner := s.Owner()
	s.handle = h
	return owner
}

// Valid reports whether the handle is non-nil.
func (s *Shared[T, O]) Valid() bool {
	return s.handle != nil
}

// Deref returns the value behind the handle.
func (s *Shared[T, O]) Deref() T {
	assert.Must(s.handle != nil, ErrNilHandle, "shared property dereferenced while empty")
	return *s.handle
}

func (s *Shared[T, O]) String() string { return Format[*T](s) }
