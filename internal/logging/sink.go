package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Sink is the main interface for emitting log entries.
type Sink interface {
	// Emit records an entry. Must be goroutine-safe.
	Emit(ev *Entry)

	// Flush ensures all buffered entries are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current logging level.
	Level() Level

	// Enabled returns true if logging is active (Level > LevelOff).
	Enabled() bool
}

// StorageMode determines how entries are stored.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // immediate write
	ModeRing                          // circular buffer
	ModeBoth                          // stream + ring
)

// String returns the string representation of StorageMode.
func (m StorageMode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to StorageMode.
func ParseMode(s string) (StorageMode, error) {
	switch strings.ToLower(s) {
	case "stream", "":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
	}
}

// Config holds sink configuration.
type Config struct {
	Level      Level
	Mode       StorageMode
	Encoder    Encoder
	Output     io.Writer // for stream mode (if nil, use OutputPath)
	OutputPath string    // "-" or "" for stderr
	RingSize   int       // for ring mode (default 256)
}

// New creates a Sink based on Config.
func New(cfg Config) (Sink, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.RingSize <= 0 {
		cfg.RingSize = 256
	}

	switch cfg.Mode {
	case ModeStream, 0:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewStreamSink(w, cfg.Level, cfg.Encoder), nil

	case ModeRing:
		return NewRingSink(cfg.RingSize, cfg.Level), nil

	case ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		stream := NewStreamSink(w, cfg.Level, cfg.Encoder)
		ring := NewRingSink(cfg.RingSize, cfg.Level)
		return NewMultiSink(cfg.Level, stream, ring), nil

	default:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output: %w", err)
	}
	return f, nil
}
