package logging

// nopSink discards everything.
type nopSink struct{}

func (nopSink) Emit(*Entry) {}
func (nopSink) Flush() error { return nil }
func (nopSink) Close() error { return nil }
func (nopSink) Level() Level { return LevelOff }
func (nopSink) Enabled() bool { return false }

// Nop is the package-level singleton nop sink.
var Nop Sink = nopSink{}
