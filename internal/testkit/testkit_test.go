package testkit

import (
	"errors"
	"strings"
	"testing"

	"bindprop/internal/logging"
	"bindprop/internal/prop"
)

type box struct {
	n     int
	Plain prop.Stored[int, box]
	Lossy prop.Value[int, box]
}

func newBox() *box {
	b := &box{}
	b.Plain = prop.NewStored[int, box](0)
	// Lossy drops every write above 100.
	b.Lossy = prop.NewValue(func(b *box) int { return b.n }, func(b *box, v int) {
		if v <= 100 {
			b.n = v
		}
	})
	prop.BindAll(b, &b.Plain, &b.Lossy)
	return b
}

func silence(t *testing.T) {
	t.Helper()
	prev := logging.SetDefault(logging.Nop)
	t.Cleanup(func() { logging.SetDefault(prev) })
}

func TestCheckRoundTrip(t *testing.T) {
	b := newBox()
	if err := CheckRoundTrip[int](&b.Plain, 1, 2, 3); err != nil {
		t.Errorf("stored: %v", err)
	}
	err := CheckRoundTrip[int](&b.Lossy, 5, 500)
	if err == nil || !strings.Contains(err.Error(), "got 5, want 500") {
		t.Errorf("lossy err = %v", err)
	}
}

func TestCheckAddLaw(t *testing.T) {
	b := newBox()
	if err := CheckAddLaw[int](&b.Plain, 10, 1, -20); err != nil {
		t.Errorf("stored: %v", err)
	}
	if err := CheckAddLaw[int](&b.Lossy, 90, 5, 50); err != nil {
		t.Errorf("the law holds even for a lossy setter: %v", err)
	}
}

func TestCheckDoubleBind(t *testing.T) {
	silence(t)
	b := newBox()
	if err := CheckDoubleBind[box](&b.Plain, b); err != nil {
		t.Error(err)
	}
	var fresh prop.Stored[int, box]
	if err := CheckDoubleBind[box](&fresh, b); err == nil {
		t.Error("first bind reported as a double bind")
	}
}

func TestCheckUnboundRead(t *testing.T) {
	silence(t)
	r := prop.NewValueReader(func(*box) int { return 1 })
	if err := CheckUnboundRead[int](&r); err != nil {
		t.Error(err)
	}
	b := newBox()
	if err := CheckUnboundRead[int](&b.Lossy); err == nil {
		t.Error("bound accessor reported as unbound")
	}
}

func TestCheckAliasIndependence(t *testing.T) {
	x, y := 1, 2
	a, c := prop.NewPointerAlias(&x), prop.NewPointerAlias(&y)
	if err := CheckAliasIndependence(&a, &c, &x, &y, 9); err != nil {
		t.Error(err)
	}
	same := prop.NewPointerAlias(&x)
	if err := CheckAliasIndependence(&a, &same, &x, &x, 10); err == nil {
		t.Error("aliases over one target reported independent")
	}
}

func TestCheckErasure(t *testing.T) {
	b := newBox()
	b.Plain.Set(4)
	b.Lossy.Set(4)
	if err := CheckErasure[int](&b.Plain, &b.Lossy); err != nil {
		t.Error(err)
	}
	b.Lossy.Set(5)
	if err := CheckErasure[int](&b.Plain, &b.Lossy); err == nil {
		t.Error("different values reported identical")
	}
}

func TestGuardReturnsViolation(t *testing.T) {
	silence(t)
	err := CheckErasure[int](&prop.ValueReader[int, box]{})
	if !errors.Is(err, prop.ErrUnbound) {
		t.Errorf("err = %v, want ErrUnbound", err)
	}
}

func TestSuitesPass(t *testing.T) {
	silence(t)
	for _, s := range Suites() {
		if err := s.Run(); err != nil {
			t.Errorf("%s: %v", s.Name, err)
		}
	}
}

func TestSelect(t *testing.T) {
	all := Suites()
	got, err := Select(all, []string{"round-trip/*", "scenario/name"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("selected %d suites, want 5", len(got))
	}
	if got, _ := Select(all, nil); len(got) != len(all) {
		t.Error("no patterns should select all")
	}
	if _, err := Select(all, []string{"["}); err == nil {
		t.Error("bad pattern accepted")
	}
}
