package prop

import "bindprop/internal/assert"

// Binding is the owner reference of an accessor. The zero value is unbound.
type Binding[O any] struct {
	owner *O
}

// Bind records owner. It is a one-shot initializer: binding an already bound
// accessor (even to the same owner) or binding nil is a violation.
func (b *Binding[O]) Bind(owner *O) {
	assert.Must(b.owner == nil, ErrAlreadyBound, "property has already been bound to an owner")
	assert.Must(owner != nil, ErrNilOwner, "owner must not be nil")
	b.owner = owner
}

// Bound reports whether Bind has been called.
func (b *Binding[O]) Bound() bool {
	return b.owner != nil
}

// Owner returns the bound owner; calling it on an unbound accessor is a violation.
func (b *Binding[O]) Owner() *O {
	assert.Must(b.owner != nil, ErrUnbound, "property is used before it was bound to an owner")
	return b.owner
}

// Binder is anything that can be bound to an owner of type O.
type Binder[O any] interface {
	Bind(owner *O)
}

// BindAll binds every accessor to owner, in order.
func BindAll[O any](owner *O, props ...Binder[O]) {
	for _, p := range props {
		p.Bind(owner)
	}
}
