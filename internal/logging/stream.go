package logging

import (
	"io"
	"os"
	"sync"
)

// StreamSink writes entries immediately to an io.Writer.
type StreamSink struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	enc   Encoder
}

// NewStreamSink creates a new StreamSink.
func NewStreamSink(w io.Writer, level Level, enc Encoder) *StreamSink {
	return &StreamSink{w: w, level: level, enc: enc}
}

// Emit writes an entry to the output.
func (s *StreamSink) Emit(ev *Entry) {
	if ev == nil || !s.level.Allows(ev.Level) {
		return
	}
	ev.Seq = NextSeq()
	data := s.enc.Encode(ev)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Best-effort write; a broken log stream must not fail the caller.
	_, _ = s.w.Write(data) //nolint:errcheck
}

// Flush calls Flush on the writer when it has one.
func (s *StreamSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if flusher, ok := s.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close flushes and closes the writer if it implements io.Closer.
// The process standard streams are never closed.
func (s *StreamSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	if s.w == os.Stderr || s.w == os.Stdout {
		return nil
	}
	if closer, ok := s.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Level returns the current logging level.
func (s *StreamSink) Level() Level { return s.level }

// Enabled returns true if logging is active.
func (s *StreamSink) Enabled() bool { return s.level > LevelOff }
