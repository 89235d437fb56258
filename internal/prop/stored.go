package prop

// Stored is a read-write accessor that owns its value, the trivial scalar
// property. Binding is only needed for Chain.
type Stored[T, O any] struct {
	Binding[O]
	readTag
	writeTag
	data T
}

// NewStored returns an unbound accessor holding v.
func NewStored[T, O any](v T) Stored[T, O] {
	return Stored[T, O]{data: v}
}

// Get returns the stored value.
func (s *Stored[T, O]) Get() T {
	return s.data
}

// Set replaces the stored value.
func (s *Stored[T, O]) Set(v T) {
	s.data = v
}

// Chain sets v and returns the owner so calls can be strung together.
// The accessor must be bound; the value is left unchanged otherwise.
func (s *Stored[T, O]) Chain(v T) *O {
	owner := s.Owner()
	s.data = v
	return owner
}

func (s *Stored[T, O]) String() string { return Format[T](s) }

// ReadonlyStored is the read-only form of Stored: the value is fixed when
// the accessor is declared. Binding is only needed for Owner.
type ReadonlyStored[T, O any] struct {
	Binding[O]
	readTag
	data T
}

// NewReadonlyStored returns an unbound read-only accessor holding v.
func NewReadonlyStored[T, O any](v T) ReadonlyStored[T, O] {
	return ReadonlyStored[T, O]{data: v}
}

// Get returns the stored value.
func (s *ReadonlyStored[T, O]) Get() T {
	return s.data
}

func (s *ReadonlyStored[T, O]) String() string { return Format[T](s) }
