package assert

import (
	"errors"
	"strings"
	"testing"

	"bindprop/internal/logging"
)

var errSample = errors.New("sample")

func captureLog(t *testing.T) *logging.RingSink {
	t.Helper()
	ring := logging.NewRingSink(16, logging.LevelTrace)
	prev := logging.SetDefault(ring)
	t.Cleanup(func() { logging.SetDefault(prev) })
	return ring
}

func TestThatPassesSilently(t *testing.T) {
	ring := captureLog(t)
	err := Catch(func() { That(true, "never shown") })
	if err != nil {
		t.Fatalf("unexpected violation: %v", err)
	}
	if len(ring.Snapshot()) != 0 {
		t.Error("passing assertion must not log")
	}
}

func TestThatReportsAndUnwinds(t *testing.T) {
	ring := captureLog(t)
	reached := false
	err := Catch(func() {
		That(1 > 2, "value ", 3, " out of range")
		reached = true
	})
	if err == nil {
		t.Fatal("expected violation")
	}
	if reached {
		t.Error("assertion must unwind the current operation")
	}
	if err.Error() != "Assertion failed: value 3 out of range" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrFailed) {
		t.Error("That should wrap ErrFailed")
	}

	snap := ring.Snapshot()
	if len(snap) != 1 || snap[0].Level != logging.LevelError {
		t.Fatalf("expected one error entry, got %+v", snap)
	}
	if snap[0].File != "assert_test.go" {
		t.Errorf("violation file = %q, want assert_test.go", snap[0].File)
	}

	var v *Violation
	if !errors.As(err, &v) || v.Line == 0 || !strings.Contains(v.Func, "TestThatReportsAndUnwinds") {
		t.Errorf("violation site not recorded: %+v", v)
	}
}

func TestMustWrapsCause(t *testing.T) {
	captureLog(t)
	err := Catch(func() { Must(false, errSample, "owner must not be nil") })
	if !errors.Is(err, errSample) {
		t.Errorf("errors.Is(%v, errSample) = false", err)
	}
	if got := err.Error(); got != "Assertion failed: owner must not be nil" {
		t.Errorf("message = %q", got)
	}

	err = Catch(func() { Must(false, nil) })
	if !errors.Is(err, ErrFailed) {
		t.Error("nil cause should fall back to ErrFailed")
	}
}

func TestFailWithoutPartsUsesCause(t *testing.T) {
	captureLog(t)
	err := Catch(func() { Fail(errSample) })
	if err == nil || err.Error() != "Assertion failed: sample" {
		t.Errorf("Fail message = %v", err)
	}
}

func TestCatchRepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "not a violation" {
			t.Errorf("recovered %v, want foreign panic value", r)
		}
	}()
	_ = Catch(func() { panic("not a violation") })
	t.Error("Catch must not swallow foreign panics")
}
