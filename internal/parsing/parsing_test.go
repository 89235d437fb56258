package parsing

import (
	"errors"
	"reflect"
	"testing"

	"bindprop/internal/assert"
	"bindprop/internal/logging"
)

func silence(t *testing.T) {
	t.Helper()
	prev := logging.SetDefault(logging.Nop)
	t.Cleanup(func() { logging.SetDefault(prev) })
}

func TestFloats(t *testing.T) {
	got := Floats("  1.5 -2\t3e2\n", 4)
	want := []float32{1.5, -2, 300}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Floats = %v, want %v", got, want)
	}
	if cap(got) < 4 {
		t.Errorf("cap = %d, want at least expected 4", cap(got))
	}
}

func TestStopsAtFirstNonNumber(t *testing.T) {
	got := Doubles("1 2 x 3", 0)
	if !reflect.DeepEqual(got, []float64{1, 2}) {
		t.Errorf("Doubles = %v, want [1 2]", got)
	}
	if got := Doubles("", 1); len(got) != 0 {
		t.Errorf("empty text gave %v", got)
	}
}

func TestIntegersDetectBase(t *testing.T) {
	got := SignedIntegers("10 -0x10 0b101 0o17", 0)
	want := []int64{10, -16, 5, 15}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SignedIntegers = %v, want %v", got, want)
	}

	var hex []uint64
	EachUnsigned("ff 10", 16, func(v uint64) { hex = append(hex, v) })
	if !reflect.DeepEqual(hex, []uint64{255, 16}) {
		t.Errorf("EachUnsigned base 16 = %v", hex)
	}

	if got := UnsignedIntegers("7 -1 8", 0); !reflect.DeepEqual(got, []uint64{7}) {
		t.Errorf("UnsignedIntegers should stop at -1, got %v", got)
	}
}

func TestGroups(t *testing.T) {
	var pairs [][2]float64
	DoubleTuples("0 0 1 2 3 4", func(a, b float64) { pairs = append(pairs, [2]float64{a, b}) })
	if !reflect.DeepEqual(pairs, [][2]float64{{0, 0}, {1, 2}, {3, 4}}) {
		t.Errorf("DoubleTuples = %v", pairs)
	}

	var sums []int64
	SignedTriples("1 2 3 4 5 6", 10, func(a, b, c int64) { sums = append(sums, a+b+c) })
	if !reflect.DeepEqual(sums, []int64{6, 15}) {
		t.Errorf("SignedTriples sums = %v", sums)
	}

	var quads int
	FloatQuadruples("1 2 3 4 5 6 7 8", func(a, b, c, d float32) { quads++ })
	if quads != 2 {
		t.Errorf("FloatQuadruples groups = %d, want 2", quads)
	}
}

func TestIncompleteGroupFails(t *testing.T) {
	silence(t)
	calls := 0
	err := assert.Catch(func() {
		UnsignedTuples("1 2 3", 10, func(a, b uint64) { calls++ })
	})
	if !errors.Is(err, ErrGroup) {
		t.Errorf("err = %v, want ErrGroup", err)
	}
	if calls != 1 {
		t.Errorf("complete groups before the failure = %d, want 1", calls)
	}
}

func TestRangeErrorFails(t *testing.T) {
	silence(t)
	err := assert.Catch(func() { _ = Floats("1 1e39", 0) })
	if !errors.Is(err, ErrRange) {
		t.Errorf("float32 overflow: err = %v, want ErrRange", err)
	}
	err = assert.Catch(func() { _ = SignedIntegers("99999999999999999999", 0) })
	if !errors.Is(err, ErrRange) {
		t.Errorf("int64 overflow: err = %v, want ErrRange", err)
	}
}

func TestNarrowIntegers(t *testing.T) {
	silence(t)
	if got := Signed32Integers("-2147483648 2147483647 0x10", 3); !reflect.DeepEqual(got, []int32{-2147483648, 2147483647, 16}) {
		t.Errorf("Signed32Integers = %v", got)
	}
	var words []uint32
	EachUnsigned32("ffffffff 1", 16, func(v uint32) { words = append(words, v) })
	if !reflect.DeepEqual(words, []uint32{0xffffffff, 1}) {
		t.Errorf("EachUnsigned32 base 16 = %v", words)
	}

	err := assert.Catch(func() { _ = Signed32Integers("1 2147483648", 0) })
	if !errors.Is(err, ErrRange) {
		t.Errorf("int32 overflow: err = %v, want ErrRange", err)
	}
	err = assert.Catch(func() { _ = Unsigned32Integers("4294967296", 0) })
	if !errors.Is(err, ErrRange) {
		t.Errorf("uint32 overflow: err = %v, want ErrRange", err)
	}
	if got := Unsigned32Integers("5 -1", 0); !reflect.DeepEqual(got, []uint32{5}) {
		t.Errorf("Unsigned32Integers should stop at -1, got %v", got)
	}
}

func TestInvalidBase(t *testing.T) {
	silence(t)
	if err := assert.Catch(func() { EachSigned("1", 1, func(int64) {}) }); err == nil {
		t.Error("base 1 should be rejected")
	}
}
