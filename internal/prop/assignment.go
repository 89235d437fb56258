package prop

import "bindprop/internal/assert"

// Assignment carries one value into exactly one destination. It is what
// by-reference setters receive: the caller picks Copy or Move, the setter just
// calls To with the slot it owns.
type Assignment[T any] struct {
	c *carrier[T]
}

type carrier[T any] struct {
	value  T
	source *T // non-nil for moves
	spent  bool
}

// Copy captures v by value; the caller's variable is left untouched.
func Copy[T any](v T) Assignment[T] {
	return Assignment[T]{c: &carrier[T]{value: v}}
}

// Move captures *src; depositing transfers the value and resets *src to zero.
func Move[T any](src *T) Assignment[T] {
	assert.Must(src != nil, ErrNilAlias, "move source must not be nil")
	return Assignment[T]{c: &carrier[T]{source: src}}
}

// To deposits the carried value into *dst and returns it.
func (a Assignment[T]) To(dst *T) T {
	assert.Must(a.c != nil, ErrCarrierSpent, "assignment is empty")
	assert.Must(!a.c.spent, ErrCarrierSpent, "assignment has already been deposited")
	assert.Must(dst != nil, ErrNilAlias, "assignment destination must not be nil")
	a.c.spent = true
	if src := a.c.source; src != nil {
		v := *src
		if src != dst {
			var zero T
			*src = zero
		}
		*dst = v
		return v
	}
	*dst = a.c.value
	return a.c.value
}

// Peek returns the carried value without depositing it.
func (a Assignment[T]) Peek() T {
	assert.Must(a.c != nil, ErrCarrierSpent, "assignment is empty")
	if a.c.source != nil {
		return *a.c.source
	}
	return a.c.value
}

// Moving reports whether the assignment will reset its source.
func (a Assignment[T]) Moving() bool {
	return a.c != nil && a.c.source != nil
}

// Spent reports whether To has already run.
func (a Assignment[T]) Spent() bool {
	return a.c != nil && a.c.spent
}
