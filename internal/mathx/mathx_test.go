package mathx

import (
	"errors"
	"hash/maphash"
	"math"
	"testing"

	"bindprop/internal/assert"
	"bindprop/internal/logging"
)

func TestConstants(t *testing.T) {
	if math.Abs(Pi-math.Pi) > 1e-15 || math.Abs(PiInverse*Pi-1) > 1e-15 {
		t.Error("Pi constants drifted")
	}
	if math.Abs(Sqrt2*Sqrt2Inverse-1) > 1e-15 || math.Abs(Sqrt3*Sqrt3-3) > 1e-14 {
		t.Error("square root constants drifted")
	}
	if PiHalf*2 != Pi {
		t.Error("PiHalf must be half of Pi")
	}
}

func TestRange(t *testing.T) {
	r := Range[int]{Minimum: 18, Maximum: 65}
	if !r.Contains(18, true) || r.Contains(18, false) {
		t.Error("limit handling wrong")
	}
	if r.Size() != 47 {
		t.Errorf("Size = %d, want 47", r.Size())
	}
	if (Range[float64]{Minimum: 2, Maximum: -1}).Size() != 3 {
		t.Error("Size should be absolute")
	}
}

func TestParity(t *testing.T) {
	if !Even(4) || Even(-3) || !Odd(-3) || Odd(uint8(0)) {
		t.Error("parity helpers wrong")
	}
}

func TestSignum(t *testing.T) {
	if Signum(-4) != -1 || Signum(0) != 0 || Signum(2.5) != 1 {
		t.Error("Signum wrong")
	}
}

func TestProject(t *testing.T) {
	tests := []struct{ in, want int }{
		{-4, 0}, {0, 0}, {4, 0},
		{-3, 1}, {1, 1}, {5, 1},
		{-2, 2}, {2, 2}, {6, 2},
		{-1, 3}, {3, 3}, {7, 3},
	}
	for _, tt := range tests {
		if got := Project(tt.in, 0, 3); got != tt.want {
			t.Errorf("Project(%d, 0, 3) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := Project(-90, 0, 359); got != 270 {
		t.Errorf("Project(-90, 0, 359) = %d, want 270", got)
	}
	if got := Project(725, 0, 359); got != 5 {
		t.Errorf("Project(725, 0, 359) = %d, want 5", got)
	}
}

func TestProjectRejectsEmptyRange(t *testing.T) {
	prev := logging.SetDefault(logging.Nop)
	defer logging.SetDefault(prev)

	for _, end := range []int{4, 2} {
		err := assert.Catch(func() { Project(7, 5, end) })
		if !errors.Is(err, ErrEmptyRange) {
			t.Errorf("Project(7, 5, %d): err = %v, want ErrEmptyRange", end, err)
		}
	}
	if got := Project(9, 5, 5); got != 5 {
		t.Errorf("Project(9, 5, 5) = %d, want 5", got)
	}
}

func TestHashCombined(t *testing.T) {
	seed := maphash.MakeSeed()
	a := HashCombined(seed, "x", "y")
	if a != HashCombined(seed, "x", "y") {
		t.Error("hash must be deterministic for a seed")
	}
	if a == HashCombined(seed, "y", "x") {
		t.Error("order should matter")
	}
	if HashCombined[int](seed) != 0 {
		t.Error("no values hash to zero")
	}
}
