package logging

import "errors"

// MultiSink fans each entry out to several sinks.
type MultiSink struct {
	sinks []Sink
	level Level
}

// NewMultiSink combines sinks. Nil entries are skipped.
func NewMultiSink(level Level, sinks ...Sink) *MultiSink {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiSink{sinks: kept, level: level}
}

// Emit forwards the entry to every sink.
func (m *MultiSink) Emit(ev *Entry) {
	if ev == nil || !m.level.Allows(ev.Level) {
		return
	}
	for _, s := range m.sinks {
		cp := *ev
		s.Emit(&cp)
	}
}

// Flush flushes every sink and joins the errors.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink and joins the errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Level returns the current logging level.
func (m *MultiSink) Level() Level { return m.level }

// Enabled returns true if logging is active.
func (m *MultiSink) Enabled() bool { return m.level > LevelOff }
