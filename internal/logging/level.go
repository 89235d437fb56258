package logging

import (
	"fmt"
	"strings"
)

// Level controls logging verbosity.
type Level uint8

const (
	// LevelOff disables logging.
	LevelOff   Level = iota // nothing
	LevelError              // failures and invariant violations
	LevelPrint              // normal output
	LevelDebug              // debugging output
	LevelTrace              // everything
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPrint:
		return "print"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Prefix is the fixed marker written in front of text entries.
func (l Level) Prefix() string {
	switch l {
	case LevelError:
		return "[E] "
	case LevelPrint:
		return "[ ] "
	case LevelDebug:
		return "[D] "
	case LevelTrace:
		return "[T] "
	default:
		return ""
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "disabled":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "print", "info":
		return LevelPrint, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelOff, fmt.Errorf("invalid log level: %q (expected: off|error|print|debug|trace)", s)
	}
}

// Allows reports whether a sink at level l accepts an entry at level entry.
func (l Level) Allows(entry Level) bool {
	if l == LevelOff || entry == LevelOff {
		return false
	}
	return entry <= l
}
