package prop

// Readable is implemented by every accessor that can be read.
type Readable[T any] interface {
	Get() T
	readable()
}

// Writable is implemented by every accessor that can be written.
type Writable[T any] interface {
	Set(v T)
	writable()
}

// ReadWrite is implemented by accessors with both capabilities.
type ReadWrite[T any] interface {
	Readable[T]
	Writable[T]
}

// readTag and writeTag seal the capability interfaces to this package.
type readTag struct{}

func (readTag) readable() {}

type writeTag struct{}

func (writeTag) writable() {}
