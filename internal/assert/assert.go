// Package assert reports invariant violations.
//
// A failed assertion formats its message parts, writes one error entry to the
// default logging sink and panics with a *Violation. The panic unwinds the
// current operation; Catch turns it back into an ordinary error at a boundary
// that wants to survive it (tests, the check command).
package assert

import (
	"errors"

	"bindprop/internal/logging"
	"bindprop/internal/strutil"
)

// ErrFailed is the cause of violations raised without a more specific error.
var ErrFailed = errors.New("assertion failed")

// Violation is the panic value of a failed assertion.
type Violation struct {
	Err     error // sentinel cause, never nil
	Message string
	File    string
	Line    int
	Func    string
}

func (v *Violation) Error() string { return v.Message }

func (v *Violation) Unwrap() error { return v.Err }

// That fails when cond is false. parts are concatenated into the message.
func That(cond bool, parts ...any) {
	if cond {
		return
	}
	fail(ErrFailed, 1, parts)
}

// Must fails with cause err when cond is false, so callers can match the
// violation with errors.Is.
func Must(cond bool, err error, parts ...any) {
	if cond {
		return
	}
	if err == nil {
		err = ErrFailed
	}
	fail(err, 1, parts)
}

// Fail unconditionally raises a violation with cause err.
func Fail(err error, parts ...any) {
	if err == nil {
		err = ErrFailed
	}
	fail(err, 1, parts)
}

func fail(cause error, skip int, parts []any) {
	msg := strutil.Stringify(append([]any{"Assertion failed: "}, parts...)...)
	if len(parts) == 0 {
		msg += cause.Error()
	}
	ev := logging.NewEntry(logging.LevelError, skip+1, msg)
	v := &Violation{Err: cause, Message: msg, File: ev.File, Line: ev.Line, Func: ev.Func}
	if sink := logging.Default(); sink.Level().Allows(logging.LevelError) {
		sink.Emit(ev)
	}
	panic(v)
}

// Catch runs fn and returns the violation it raised, or nil.
// Panics that are not violations keep unwinding.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if v, ok := r.(*Violation); ok {
			err = v
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
