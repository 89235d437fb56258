// Package parsing reads whitespace separated numbers out of text, one at a
// time or in fixed-size groups.
//
// Scanning stops quietly at the first token that is not a number, the way the
// C strto* family stops at the first unparsable character. Two conditions are
// invariant violations instead: a number that overflows its type, and a group
// parse whose element count is not a multiple of the group size.
package parsing

import (
	"errors"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"bindprop/internal/assert"
)

// ErrRange is the violation cause for out-of-range numbers.
var ErrRange = errors.New("number out of range")

// ErrGroup is the violation cause for incomplete groups.
var ErrGroup = errors.New("incomplete group")

// Parser converts one token.
type Parser[T any] func(token string) (T, error)

// Singles parses text and calls consume for each value.
func Singles[T any](text string, parse Parser[T], consume func(T)) {
	for _, tok := range strings.Fields(text) {
		v, err := parse(tok)
		if err != nil {
			assert.Must(!errors.Is(err, strconv.ErrRange), ErrRange,
				"range error while parsing text for space separated values. input was: \"", text, "\"")
			return
		}
		consume(v)
	}
}

// groups collects values n at a time and calls flush with each full group.
func groups[T any](text string, n int, parse Parser[T], flush func([]T)) {
	buf := make([]T, n)
	offset := 0
	Singles(text, parse, func(v T) {
		buf[offset] = v
		if offset == n-1 {
			flush(buf)
		}
		offset = (offset + 1) % n
	})
	assert.Must(offset == 0, ErrGroup,
		"error while parsing text for space separated values in groups of ", n,
		": number of elements was not a multiple of the size of a group. input was: \"", text, "\"")
}

// Tuples parses text in groups of two.
func Tuples[T any](text string, parse Parser[T], consume func(a, b T)) {
	groups(text, 2, parse, func(g []T) { consume(g[0], g[1]) })
}

// Triples parses text in groups of three.
func Triples[T any](text string, parse Parser[T], consume func(a, b, c T)) {
	groups(text, 3, parse, func(g []T) { consume(g[0], g[1], g[2]) })
}

// Quadruples parses text in groups of four.
func Quadruples[T any](text string, parse Parser[T], consume func(a, b, c, d T)) {
	groups(text, 4, parse, func(g []T) { consume(g[0], g[1], g[2], g[3]) })
}

// collect gathers every value into a slice with room for expected entries.
func collect[T any](text string, expected uint, parse Parser[T]) []T {
	capacity, err := safecast.Conv[int](expected)
	if err != nil {
		capacity = 0
	}
	out := make([]T, 0, capacity)
	Singles(text, parse, func(v T) { out = append(out, v) })
	return out
}
