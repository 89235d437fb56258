// Package mathx holds numeric constants and small generic helpers.
package mathx

import (
	"errors"
	"hash/maphash"

	"golang.org/x/exp/constraints"

	"bindprop/internal/assert"
)

// ErrEmptyRange is the violation cause for a Project range holding no values.
var ErrEmptyRange = errors.New("empty range")

const (
	Pi           = 3.14159265358979323846
	PiInverse    = 0.318309886183790671538
	PiHalf       = 1.57079632679489661923
	Sqrt2        = 1.41421356237309504880
	Sqrt2Inverse = 0.707106781186547524401
	Sqrt3        = 1.73205080756887729353
	Sqrt3Inverse = 0.577350269189625764509
)

// Real is any integer or floating point type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Signed is any type with a sign.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Range is a closed or open interval between Minimum and Maximum.
type Range[T Real] struct {
	Minimum T
	Maximum T
}

// Contains reports whether v lies in the range, limits included when
// inclusive is set.
func (r Range[T]) Contains(v T, inclusive bool) bool {
	return Within(v, r.Minimum, r.Maximum, inclusive)
}

// Size is the distance between the limits.
func (r Range[T]) Size() T {
	if r.Maximum >= r.Minimum {
		return r.Maximum - r.Minimum
	}
	return r.Minimum - r.Maximum
}

// Within reports whether begin <= v <= end (or strictly, when !inclusive).
func Within[T constraints.Ordered](v, begin, end T, inclusive bool) bool {
	if inclusive {
		return begin <= v && v <= end
	}
	return begin < v && v < end
}

func Even[T constraints.Integer](v T) bool { return v%2 == 0 }

func Odd[T constraints.Integer](v T) bool { return v%2 != 0 }

// Signum returns -1, 0 or +1.
func Signum[T Signed](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Project wraps value into the inclusive range [begin, end], e.g. with
// begin=0, end=3: -4,0,4 -> 0; -3,1,5 -> 1; -1,3,7 -> 3.
// end must not be below begin.
func Project(value, begin, end int) int {
	size := end + 1 - begin
	assert.Must(size > 0, ErrEmptyRange, "cannot project ", value, " into [", begin, ", ", end, "]")
	if value < begin {
		value += size * ((begin-value)/size + 1)
	}
	return begin + (value-begin)%size
}

// HashCombined folds the hashes of values into one, boost-style.
func HashCombined[T comparable](seed maphash.Seed, values ...T) uint64 {
	var h uint64
	for _, v := range values {
		h ^= maphash.Comparable(seed, v) + 0x9e3779b9 + (h << 6) + (h >> 2)
	}
	return h
}
