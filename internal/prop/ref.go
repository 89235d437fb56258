package prop

import "bindprop/internal/assert"

// RefGetter returns a reference into the owner.
type RefGetter[T, O any] func(owner *O) *T

// RefSetter receives the value to store as an Assignment and deposits it
// with Assignment.To.
type RefSetter[T, O any] func(owner *O, a Assignment[T])

// RefReader is a read-only accessor whose getter returns a reference into
// the owner rather than a copy.
type RefReader[T, O any] struct {
	Binding[O]
	readTag
	get RefGetter[T, O]
}

// NewRefReader declares a read-only by-reference accessor.
func NewRefReader[T, O any](get RefGetter[T, O]) RefReader[T, O] {
	assert.Must(get != nil, ErrNilFunc, "getter must not be nil")
	return RefReader[T, O]{get: get}
}

// Ref returns the reference produced by the owner getter.
func (r *RefReader[T, O]) Ref() *T {
	owner := r.Owner()
	assert.Must(r.get != nil, ErrNilFunc, "property has no getter")
	p := r.get(owner)
	assert.Must(p != nil, ErrNilAlias, "getter returned a nil reference")
	return p
}

// Get returns the value behind Ref.
func (r *RefReader[T, O]) Get() T {
	return *r.Ref()
}

func (r *RefReader[T, O]) String() string { return Format[T](r) }

// RefWriter is a write-only accessor handing values to the owner setter
// through an Assignment.
type RefWriter[T, O any] struct {
	Binding[O]
	writeTag
	set RefSetter[T, O]
}

// NewRefWriter declares a write-only by-reference accessor.
func NewRefWriter[T, O any](set RefSetter[T, O]) RefWriter[T, O] {
	assert.Must(set != nil, ErrNilFunc, "setter must not be nil")
	return RefWriter[T, O]{set: set}
}

// Set copies v into the owner.
func (w *RefWriter[T, O]) Set(v T) {
	w.deliver(Copy(v))
}

// SetMove moves *src into the owner; *src is zero afterwards if the setter
// deposited it.
func (w *RefWriter[T, O]) SetMove(src *T) {
	w.deliver(Move(src))
}

func (w *RefWriter[T, O]) deliver(a Assignment[T]) {
	owner := w.Owner()
	assert.Must(w.set != nil, ErrNilFunc, "property has no setter")
	w.set(owner, a)
}

// Ref is the read-write composition of RefReader and RefWriter.
type Ref[T, O any] struct {
	RefReader[T, O]
	RefWriter[T, O]
}

// NewRef declares a read-write by-reference accessor.
func NewRef[T, O any](get RefGetter[T, O], set RefSetter[T, O]) Ref[T, O] {
	return Ref[T, O]{
		RefReader: NewRefReader(get),
		RefWriter: NewRefWriter(set),
	}
}

// Bind binds both halves to owner. Neither half may be bound already.
func (r *Ref[T, O]) Bind(owner *O) {
	assert.Must(!r.RefReader.Bound() && !r.RefWriter.Bound(), ErrAlreadyBound,
		"property has already been bound to an owner")
	r.RefReader.Bind(owner)
	r.RefWriter.Bind(owner)
}

// Bound reports whether Bind has been called.
func (r *Ref[T, O]) Bound() bool {
	return r.RefReader.Bound()
}

// Owner returns the bound owner.
func (r *Ref[T, O]) Owner() *O {
	return r.RefReader.Owner()
}
