package logging

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
)

// Format represents the output encoding for log entries.
type Format uint8

const (
	FormatText    Format = iota // human-readable text
	FormatNDJSON                // newline-delimited JSON
	FormatMsgpack               // concatenated msgpack maps
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatNDJSON:
		return "ndjson"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	default:
		return FormatText, fmt.Errorf("invalid log format: %q (expected: text|ndjson|msgpack)", s)
	}
}

// Encoder turns entries into bytes.
type Encoder struct {
	Format    Format
	Detailed  bool // text only: prefix "file(line):func() : "
	Color     bool // text only: colour the level prefix
	Timestamp bool // text only: leading RFC3339 time
}

// wireEntry is the structured shape shared by NDJSON and msgpack.
type wireEntry struct {
	Time    string `json:"time" msgpack:"time"`
	Seq     uint64 `json:"seq" msgpack:"seq"`
	Level   string `json:"level" msgpack:"level"`
	File    string `json:"file,omitempty" msgpack:"file,omitempty"`
	Line    int    `json:"line,omitempty" msgpack:"line,omitempty"`
	Func    string `json:"func,omitempty" msgpack:"func,omitempty"`
	Message string `json:"message" msgpack:"message"`
}

func toWire(ev *Entry) wireEntry {
	return wireEntry{
		Time:    ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:     ev.Seq,
		Level:   ev.Level.String(),
		File:    ev.File,
		Line:    ev.Line,
		Func:    ev.Func,
		Message: ev.Message,
	}
}

// Encode formats an entry according to the encoder settings.
func (e Encoder) Encode(ev *Entry) []byte {
	switch e.Format {
	case FormatNDJSON:
		data, err := json.Marshal(toWire(ev))
		if err != nil {
			return nil
		}
		return append(data, '\n')
	case FormatMsgpack:
		data, err := msgpack.Marshal(toWire(ev))
		if err != nil {
			return nil
		}
		return data
	default:
		return e.text(ev)
	}
}

// text renders: [time ][prefix][file(line):func() : ]message\n
func (e Encoder) text(ev *Entry) []byte {
	var sb strings.Builder
	if e.Timestamp && !ev.Time.IsZero() {
		sb.WriteString(ev.Time.Format("2006-01-02T15:04:05Z07:00"))
		sb.WriteByte(' ')
	}
	prefix := ev.Level.Prefix()
	if e.Color {
		prefix = levelColor(ev.Level).Sprint(prefix)
	}
	sb.WriteString(prefix)
	if e.Detailed && ev.File != "" {
		sb.WriteString(ev.File)
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(ev.Line))
		sb.WriteString("):")
		sb.WriteString(ev.Func)
		sb.WriteString("() : ")
	}
	sb.WriteString(ev.Message)
	sb.WriteByte('\n')
	return []byte(sb.String())
}

func levelColor(l Level) *color.Color {
	var c *color.Color
	switch l {
	case LevelError:
		c = color.New(color.FgRed, color.Bold)
	case LevelDebug:
		c = color.New(color.FgCyan)
	case LevelTrace:
		c = color.New(color.FgHiBlack)
	default:
		c = color.New(color.FgGreen)
	}
	// The caller already decided colour is wanted; ignore the global tty probe.
	c.EnableColor()
	return c
}
