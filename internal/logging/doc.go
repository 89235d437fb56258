// Package logging is the logging sink used across bindprop.
//
// # Levels
//
// Verbosity is a single ordered level:
//
//   - LevelOff: nothing is written
//   - LevelError: invariant violations and failures ("[E] ")
//   - LevelPrint: normal output ("[ ] ")
//   - LevelDebug: debugging output ("[D] ")
//   - LevelTrace: everything ("[T] ")
//
// A sink configured at some level accepts every entry at that level or below.
//
// # Sinks
//
//   - StreamSink: writes each entry immediately to an io.Writer
//   - RingSink: keeps the last N entries in memory, dumped on demand
//   - MultiSink: fans out to several sinks
//   - Nop: discards everything
//
// Entries are encoded as text, NDJSON or msgpack. The text form optionally
// carries the caller location ("file(line):func() : ") and coloured prefixes.
//
// # Default sink and context
//
// The assertion service and the package-level helpers (Errorf, Printf, Debugf,
// Tracef) write to the process default sink, replaced with SetDefault. Commands
// that carry a context attach their sink with WithSink and recover it with
// FromContext.
package logging
