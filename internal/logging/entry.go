package logging

import (
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var globalSeq uint64

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return atomic.AddUint64(&globalSeq, 1)
}

// Entry is a single log line before encoding.
type Entry struct {
	Time    time.Time // wall-clock timestamp
	Seq     uint64    // global sequence number, assigned by the sink
	Level   Level
	File    string // caller file, base name only
	Line    int
	Func    string // caller function, package-qualified
	Message string
}

// NewEntry builds an entry for msg and records the caller skip frames above
// NewEntry's own caller (0 means the function calling NewEntry).
func NewEntry(level Level, skip int, msg string) *Entry {
	ev := &Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
	if pc, file, line, ok := runtime.Caller(skip + 1); ok {
		ev.File = baseName(file)
		ev.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			ev.Func = shortFunc(fn.Name())
		}
	}
	return ev
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// shortFunc strips the import path, keeping "pkg.Func" or "pkg.(*T).Method".
func shortFunc(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
