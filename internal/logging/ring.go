package logging

import (
	"io"
	"sync"
)

// RingSink keeps the last N entries in memory (circular buffer).
type RingSink struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
	level    Level
}

// NewRingSink creates a new RingSink with the given capacity.
func NewRingSink(capacity int, level Level) *RingSink {
	if capacity <= 0 {
		capacity = 256
	}
	return &RingSink{
		entries:  make([]Entry, capacity),
		capacity: capacity,
		level:    level,
	}
}

// Emit adds an entry to the ring buffer.
func (r *RingSink) Emit(ev *Entry) {
	if ev == nil || !r.level.Allows(ev.Level) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *ev
	stored.Seq = NextSeq()
	r.entries[r.head] = stored
	r.head = (r.head + 1) % r.capacity
	if r.head == 0 {
		r.full = true
	}
}

// Snapshot returns a copy of all stored entries in chronological order.
func (r *RingSink) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.full {
		out := make([]Entry, r.head)
		copy(out, r.entries[:r.head])
		return out
	}
	out := make([]Entry, r.capacity)
	copy(out, r.entries[r.head:])
	copy(out[r.capacity-r.head:], r.entries[:r.head])
	return out
}

// Messages returns the message text of the stored entries, oldest first.
func (r *RingSink) Messages() []string {
	snap := r.Snapshot()
	out := make([]string, len(snap))
	for i := range snap {
		out[i] = snap[i].Message
	}
	return out
}

// Dump writes all entries to w with the given encoder.
func (r *RingSink) Dump(w io.Writer, enc Encoder) error {
	for _, ev := range r.Snapshot() {
		if _, err := w.Write(enc.Encode(&ev)); err != nil {
			return err
		}
	}
	return nil
}

// Reset drops every stored entry.
func (r *RingSink) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.entries)
	r.head = 0
	r.full = false
}

// Flush is a no-op for RingSink since everything is in memory.
func (r *RingSink) Flush() error { return nil }

// Close is a no-op for RingSink.
func (r *RingSink) Close() error { return nil }

// Level returns the current logging level.
func (r *RingSink) Level() Level { return r.level }

// Enabled returns true if logging is active.
func (r *RingSink) Enabled() bool { return r.level > LevelOff }
