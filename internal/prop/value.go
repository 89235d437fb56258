package prop

import "bindprop/internal/assert"

// Getter reads a value from the owner.
type Getter[T, O any] func(owner *O) T

// Setter writes a value into the owner.
type Setter[T, O any] func(owner *O, v T)

// ValueReader is a read-only accessor that calls an owner getter and returns
// its result by value.
type ValueReader[T, O any] struct {
	Binding[O]
	readTag
	get Getter[T, O]
}

// NewValueReader declares a read-only delegating accessor.
func NewValueReader[T, O any](get Getter[T, O]) ValueReader[T, O] {
	assert.Must(get != nil, ErrNilFunc, "getter must not be nil")
	return ValueReader[T, O]{get: get}
}

// Get calls the owner getter.
func (r *ValueReader[T, O]) Get() T {
	owner := r.Owner()
	assert.Must(r.get != nil, ErrNilFunc, "property has no getter")
	return r.get(owner)
}

func (r *ValueReader[T, O]) String() string { return Format[T](r) }

// ValueWriter is a write-only accessor that passes values to an owner setter.
type ValueWriter[T, O any] struct {
	Binding[O]
	writeTag
	set Setter[T, O]
}

// NewValueWriter declares a write-only delegating accessor.
func NewValueWriter[T, O any](set Setter[T, O]) ValueWriter[T, O] {
	assert.Must(set != nil, ErrNilFunc, "setter must not be nil")
	return ValueWriter[T, O]{set: set}
}

// Set calls the owner setter with v.
func (w *ValueWriter[T, O]) Set(v T) {
	owner := w.Owner()
	assert.Must(w.set != nil, ErrNilFunc, "property has no setter")
	w.set(owner, v)
}

// Value is the read-write composition of ValueReader and ValueWriter.
// Get and Set come from the halves; binding goes to both.
type Value[T, O any] struct {
	ValueReader[T, O]
	ValueWriter[T, O]
}

// NewValue declares a read-write delegating accessor.
func NewValue[T, O any](get Getter[T, O], set Setter[T, O]) Value[T, O] {
	return Value[T, O]{
		ValueReader: NewValueReader(get),
		ValueWriter: NewValueWriter(set),
	}
}

// Bind binds both halves to owner. Neither half may be bound already.
func (v *Value[T, O]) Bind(owner *O) {
	assert.Must(!v.ValueReader.Bound() && !v.ValueWriter.Bound(), ErrAlreadyBound,
		"property has already been bound to an owner")
	v.ValueReader.Bind(owner)
	v.ValueWriter.Bind(owner)
}

// Bound reports whether Bind has been called.
func (v *Value[T, O]) Bound() bool {
	return v.ValueReader.Bound()
}

// Owner returns the bound owner.
func (v *Value[T, O]) Owner() *O {
	return v.ValueReader.Owner()
}
