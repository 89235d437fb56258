package prop

import (
	"io"

	"bindprop/internal/strutil"
)

// Format renders the current value of any readable accessor.
func Format[T any](r Readable[T]) string {
	return strutil.ToString(r.Get())
}

// Fprint writes the current value of r to w.
func Fprint[T any](w io.Writer, r Readable[T]) (int, error) {
	return io.WriteString(w, Format(r))
}

// Prepend returns text followed by the value of r.
func Prepend[T any](text string, r Readable[T]) string {
	return text + Format(r)
}

// Append returns the value of r followed by text.
func Append[T any](r Readable[T], text string) string {
	return Format(r) + text
}
