package logging

import (
	"fmt"
	"os"
	"sync/atomic"
)

type holder struct{ sink Sink }

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{sink: NewStreamSink(os.Stderr, LevelPrint, Encoder{Format: FormatText})})
}

// Default returns the process default sink.
func Default() Sink {
	return current.Load().sink
}

// SetDefault replaces the process default sink and returns the previous one.
// A nil sink installs Nop.
func SetDefault(s Sink) Sink {
	if s == nil {
		s = Nop
	}
	return current.Swap(&holder{sink: s}).sink
}

// Log emits msg at level to the default sink. skip counts extra frames
// between the real caller and Log.
func Log(level Level, skip int, msg string) {
	s := Default()
	if !s.Level().Allows(level) {
		return
	}
	s.Emit(NewEntry(level, skip+1, msg))
}

// Errorf logs at LevelError.
func Errorf(format string, args ...any) {
	Log(LevelError, 1, fmt.Sprintf(format, args...))
}

// Printf logs at LevelPrint.
func Printf(format string, args ...any) {
	Log(LevelPrint, 1, fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func Debugf(format string, args ...any) {
	Log(LevelDebug, 1, fmt.Sprintf(format, args...))
}

// Tracef logs at LevelTrace.
func Tracef(format string, args ...any) {
	Log(LevelTrace, 1, fmt.Sprintf(format, args...))
}
