package testkit

import (
	"errors"
	"fmt"

	"bindprop/internal/assert"
	"bindprop/internal/prop"
)

// guard runs fn, turning an assertion violation raised inside it into the
// returned error.
func guard(fn func() error) error {
	var err error
	if v := assert.Catch(func() { err = fn() }); v != nil {
		return v
	}
	return err
}

// CheckRoundTrip verifies that Get returns what Set stored, for every value:
// 1) each Set is visible through the next Get
// 2) the value survives a second read unchanged
func CheckRoundTrip[T comparable](rw prop.ReadWrite[T], values ...T) error {
	return guard(func() error {
		for _, v := range values {
			rw.Set(v)
			if got := rw.Get(); got != v {
				return mismatch("round trip", got, v)
			}
			if got := rw.Get(); got != v {
				return mismatch("second read", got, v)
			}
		}
		return nil
	})
}

// CheckAddLaw verifies that AddAssign(rw, v) leaves rw where Set(Get()+v)
// would, starting from start each time.
func CheckAddLaw[T prop.Addable](rw prop.ReadWrite[T], start T, deltas ...T) error {
	return guard(func() error {
		for _, v := range deltas {
			rw.Set(start)
			rw.Set(rw.Get() + v)
			want := rw.Get()

			rw.Set(start)
			prop.AddAssign(rw, v)
			if got := rw.Get(); got != want {
				return mismatch(fmt.Sprintf("AddAssign(%v)", v), got, want)
			}
		}
		return nil
	})
}

// CheckDoubleBind verifies that binding an already bound accessor fails with
// prop.ErrAlreadyBound, whether the second owner is the same or not.
func CheckDoubleBind[O any](b prop.Binder[O], owner *O) error {
	err := assert.Catch(func() { b.Bind(owner) })
	if err == nil {
		return errors.New("second bind succeeded")
	}
	if !errors.Is(err, prop.ErrAlreadyBound) {
		return fmt.Errorf("second bind failed with %w, want %w", err, prop.ErrAlreadyBound)
	}
	return nil
}

// CheckUnboundRead verifies that reading r before any owner is bound fails
// with prop.ErrUnbound.
func CheckUnboundRead[T any](r prop.Readable[T]) error {
	err := assert.Catch(func() { _ = r.Get() })
	if err == nil {
		return errors.New("unbound read succeeded")
	}
	if !errors.Is(err, prop.ErrUnbound) {
		return fmt.Errorf("unbound read failed with %w, want %w", err, prop.ErrUnbound)
	}
	return nil
}

// CheckAliasIndependence writes next through ta and verifies that a follows
// it while b still reads its own target tb.
func CheckAliasIndependence[T comparable](a, b *prop.PointerAlias[T], ta, tb *T, next T) error {
	return guard(func() error {
		before := b.Get()
		*ta = next
		if got := a.Get(); got != next {
			return mismatch("alias after target write", got, next)
		}
		if !b.Is(tb) {
			return errors.New("unrelated alias changed target")
		}
		if got := b.Get(); got != before {
			return mismatch("unrelated alias", got, before)
		}
		return nil
	})
}

// CheckErasure verifies that every reader renders the same text.
func CheckErasure[T any](readers ...prop.Readable[T]) error {
	return guard(func() error {
		if len(readers) == 0 {
			return nil
		}
		want := prop.Format(readers[0])
		for i, r := range readers[1:] {
			if got := prop.Format(r); got != want {
				return mismatch(fmt.Sprintf("reader %d text", i+1), got, want)
			}
		}
		return nil
	})
}

func mismatch(what string, got, want any) error {
	return fmt.Errorf("%s: got %v, want %v", what, got, want)
}
