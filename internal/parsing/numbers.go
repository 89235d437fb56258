package parsing

import (
	"strconv"

	"fortio.org/safecast"

	"bindprop/internal/assert"
)

// ParseFloat is the float32 token parser. strconv rounds and range checks to
// float32 precision, so the conversion below is exact.
func ParseFloat(tok string) (float32, error) {
	f, err := strconv.ParseFloat(tok, 32)
	return float32(f), err
}

// ParseDouble is the float64 token parser.
func ParseDouble(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}

// SignedParser returns a token parser for base (0 means detect from prefix).
func SignedParser(base int) Parser[int64] {
	checkBase(base)
	return func(tok string) (int64, error) { return strconv.ParseInt(tok, base, 64) }
}

// UnsignedParser returns a token parser for base (0 means detect from prefix).
func UnsignedParser(base int) Parser[uint64] {
	checkBase(base)
	return func(tok string) (uint64, error) { return strconv.ParseUint(tok, base, 64) }
}

// Signed32Parser is SignedParser narrowed to int32.
func Signed32Parser(base int) Parser[int32] {
	wide := SignedParser(base)
	return func(tok string) (int32, error) {
		v, err := wide(tok)
		if err != nil {
			return 0, err
		}
		return narrow[int32](tok, v)
	}
}

// Unsigned32Parser is UnsignedParser narrowed to uint32.
func Unsigned32Parser(base int) Parser[uint32] {
	wide := UnsignedParser(base)
	return func(tok string) (uint32, error) {
		v, err := wide(tok)
		if err != nil {
			return 0, err
		}
		return narrow[uint32](tok, v)
	}
}

// narrow converts v losslessly or reports a strconv range error for tok.
func narrow[N int32 | uint32, W int64 | uint64](tok string, v W) (N, error) {
	n, err := safecast.Conv[N](v)
	if err != nil {
		return 0, &strconv.NumError{Func: "narrow", Num: tok, Err: strconv.ErrRange}
	}
	return n, nil
}

func checkBase(base int) {
	assert.That(base == 0 || (base >= 2 && base <= 36), "invalid integer base ", base)
}

// float32

func EachFloat(text string, consume func(float32)) { Singles(text, ParseFloat, consume) }
func FloatTuples(text string, consume func(a, b float32)) { Tuples(text, ParseFloat, consume) }
func FloatTriples(text string, consume func(a, b, c float32)) {
	Triples(text, ParseFloat, consume)
}
func FloatQuadruples(text string, consume func(a, b, c, d float32)) {
	Quadruples(text, ParseFloat, consume)
}

// Floats returns every float32 in text.
func Floats(text string, expected uint) []float32 { return collect(text, expected, ParseFloat) }

// float64

func EachDouble(text string, consume func(float64)) { Singles(text, ParseDouble, consume) }
func DoubleTuples(text string, consume func(a, b float64)) { Tuples(text, ParseDouble, consume) }
func DoubleTriples(text string, consume func(a, b, c float64)) {
	Triples(text, ParseDouble, consume)
}
func DoubleQuadruples(text string, consume func(a, b, c, d float64)) {
	Quadruples(text, ParseDouble, consume)
}

// Doubles returns every float64 in text.
func Doubles(text string, expected uint) []float64 { return collect(text, expected, ParseDouble) }

// signed integers

func EachSigned(text string, base int, consume func(int64)) {
	Singles(text, SignedParser(base), consume)
}
func SignedTuples(text string, base int, consume func(a, b int64)) {
	Tuples(text, SignedParser(base), consume)
}
func SignedTriples(text string, base int, consume func(a, b, c int64)) {
	Triples(text, SignedParser(base), consume)
}
func SignedQuadruples(text string, base int, consume func(a, b, c, d int64)) {
	Quadruples(text, SignedParser(base), consume)
}

// SignedIntegers returns every signed integer in text, detecting the base.
func SignedIntegers(text string, expected uint) []int64 {
	return collect(text, expected, SignedParser(0))
}

// unsigned integers

func EachUnsigned(text string, base int, consume func(uint64)) {
	Singles(text, UnsignedParser(base), consume)
}
func UnsignedTuples(text string, base int, consume func(a, b uint64)) {
	Tuples(text, UnsignedParser(base), consume)
}
func UnsignedTriples(text string, base int, consume func(a, b, c uint64)) {
	Triples(text, UnsignedParser(base), consume)
}
func UnsignedQuadruples(text string, base int, consume func(a, b, c, d uint64)) {
	Quadruples(text, UnsignedParser(base), consume)
}

// UnsignedIntegers returns every unsigned integer in text, detecting the base.
func UnsignedIntegers(text string, expected uint) []uint64 {
	return collect(text, expected, UnsignedParser(0))
}

// 32-bit integers

func EachSigned32(text string, base int, consume func(int32)) {
	Singles(text, Signed32Parser(base), consume)
}
func EachUnsigned32(text string, base int, consume func(uint32)) {
	Singles(text, Unsigned32Parser(base), consume)
}

// Signed32Integers returns every int32 in text, detecting the base.
func Signed32Integers(text string, expected uint) []int32 {
	return collect(text, expected, Signed32Parser(0))
}

// Unsigned32Integers returns every uint32 in text, detecting the base.
func Unsigned32Integers(text string, expected uint) []uint32 {
	return collect(text, expected, Unsigned32Parser(0))
}
