package prop

import "bindprop/internal/assert"

// PointerAlias is a read-only view of a value owned elsewhere. The target
// must outlive the accessor. It needs no owner binding.
type PointerAlias[T any] struct {
	readTag
	target *T
}

// NewPointerAlias returns an alias over target. A nil target may be supplied
// later, once, with Initialize.
func NewPointerAlias[T any](target *T) PointerAlias[T] {
	return PointerAlias[T]{target: target}
}

// Initialize sets the target of an alias built without one.
func (a *PointerAlias[T]) Initialize(target *T) {
	assert.Must(a.target == nil, ErrAlreadyBound, "property has already been initialized")
	assert.Must(target != nil, ErrNilAlias, "pointer must not be null")
	a.target = target
}

// Initialized reports whether the alias has a target.
func (a *PointerAlias[T]) Initialized() bool {
	return a.target != nil
}

// Get returns the current value of the target.
func (a *PointerAlias[T]) Get() T {
	return *a.Ref()
}

// Ref returns the target pointer itself.
func (a *PointerAlias[T]) Ref() *T {
	assert.Must(a.target != nil, ErrNilAlias, "pointer property read before it was initialized")
	return a.target
}

// Is reports whether the alias points at p.
func (a *PointerAlias[T]) Is(p *T) bool {
	return a.target == p
}

func (a *PointerAlias[T]) String() string { return Format[T](a) }
