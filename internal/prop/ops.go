package prop

import "golang.org/x/exp/constraints"

// Number is any type with + - * /.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Addable is any type with +.
type Addable interface {
	Number | ~string
}

// The compound helpers below read, compute and write back in two separate
// steps; they are not atomic. Each returns the value written.

// AddAssign performs rw = rw + v.
func AddAssign[T Addable](rw ReadWrite[T], v T) T {
	n := rw.Get() + v
	rw.Set(n)
	return n
}

// SubAssign performs rw = rw - v.
func SubAssign[T Number](rw ReadWrite[T], v T) T {
	n := rw.Get() - v
	rw.Set(n)
	return n
}

// MulAssign performs rw = rw * v.
func MulAssign[T Number](rw ReadWrite[T], v T) T {
	n := rw.Get() * v
	rw.Set(n)
	return n
}

// DivAssign performs rw = rw / v.
func DivAssign[T Number](rw ReadWrite[T], v T) T {
	n := rw.Get() / v
	rw.Set(n)
	return n
}

// Update performs rw = fn(rw).
func Update[T any](rw ReadWrite[T], fn func(T) T) T {
	n := fn(rw.Get())
	rw.Set(n)
	return n
}

// Assign sets v and returns what the accessor reads back afterwards, which
// for delegating accessors is whatever the owner kept.
func Assign[T any](rw ReadWrite[T], v T) T {
	rw.Set(v)
	return rw.Get()
}

// Equal compares the current value of r with v.
func Equal[T comparable](r Readable[T], v T) bool {
	return r.Get() == v
}
