// Package algo holds slice helpers for prefix/suffix matching and for
// regrouping flat slices into fixed-size records.
package algo

import (
	"errors"
	"slices"

	"bindprop/internal/assert"
)

// ErrGroup is the violation cause when a source slice does not split into
// whole groups.
var ErrGroup = errors.New("source length is not a multiple of the group size")

// BeginsWith reports whether scanned starts with match.
func BeginsWith[S ~[]E, E comparable](match, scanned S) bool {
	return len(scanned) >= len(match) && slices.Equal(match, scanned[:len(match)])
}

// EndsWith reports whether scanned ends with match.
func EndsWith[S ~[]E, E comparable](match, scanned S) bool {
	return len(scanned) >= len(match) && slices.Equal(match, scanned[len(scanned)-len(match):])
}

func checkGroups(n, size int) {
	assert.Must(n%size == 0, ErrGroup, "cannot copy ", n, " entries in groups of ", size)
}

// CopyTuples appends build(a, b) to dst for every pair in src.
func CopyTuples[E, D any](src []E, dst []D, build func(a, b E) D) []D {
	checkGroups(len(src), 2)
	for i := 0; i < len(src); i += 2 {
		dst = append(dst, build(src[i], src[i+1]))
	}
	return dst
}

// CopyTriples appends build(a, b, c) to dst for every triple in src.
func CopyTriples[E, D any](src []E, dst []D, build func(a, b, c E) D) []D {
	checkGroups(len(src), 3)
	for i := 0; i < len(src); i += 3 {
		dst = append(dst, build(src[i], src[i+1], src[i+2]))
	}
	return dst
}

// CopyQuadruples appends build(a, b, c, d) to dst for every quadruple in src.
func CopyQuadruples[E, D any](src []E, dst []D, build func(a, b, c, d E) D) []D {
	checkGroups(len(src), 4)
	for i := 0; i < len(src); i += 4 {
		dst = append(dst, build(src[i], src[i+1], src[i+2], src[i+3]))
	}
	return dst
}
