package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"off", LevelOff},
		{"ERROR", LevelError},
		{"print", LevelPrint},
		{"info", LevelPrint},
		{" debug ", LevelDebug},
		{"trace", LevelTrace},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestLevelAllows(t *testing.T) {
	if !LevelPrint.Allows(LevelError) {
		t.Error("print sink should accept errors")
	}
	if LevelPrint.Allows(LevelDebug) {
		t.Error("print sink should drop debug")
	}
	if LevelOff.Allows(LevelError) {
		t.Error("off sink accepts nothing")
	}
	if LevelTrace.Allows(LevelOff) {
		t.Error("off entries are never emitted")
	}
}

func TestTextEncoding(t *testing.T) {
	ev := &Entry{Level: LevelError, File: "prop.go", Line: 12, Func: "prop.(*Binding[...]).Bind", Message: "boom"}

	plain := string(Encoder{}.Encode(ev))
	if plain != "[E] boom\n" {
		t.Errorf("plain = %q, want %q", plain, "[E] boom\n")
	}

	detailed := string(Encoder{Detailed: true}.Encode(ev))
	want := "[E] prop.go(12):prop.(*Binding[...]).Bind() : boom\n"
	if detailed != want {
		t.Errorf("detailed = %q, want %q", detailed, want)
	}

	coloured := string(Encoder{Color: true}.Encode(ev))
	if !strings.Contains(coloured, "\x1b[") || !strings.HasSuffix(coloured, "boom\n") {
		t.Errorf("coloured output missing escape codes: %q", coloured)
	}
}

func TestStructuredEncodings(t *testing.T) {
	ev := &Entry{Seq: 7, Level: LevelDebug, Message: "bound"}

	var js map[string]any
	line := Encoder{Format: FormatNDJSON}.Encode(ev)
	if !bytes.HasSuffix(line, []byte("\n")) {
		t.Error("ndjson line must end with newline")
	}
	if err := json.Unmarshal(line, &js); err != nil {
		t.Fatalf("ndjson: %v", err)
	}
	if js["level"] != "debug" || js["message"] != "bound" {
		t.Errorf("unexpected ndjson payload: %v", js)
	}

	var mp wireEntry
	if err := msgpack.Unmarshal(Encoder{Format: FormatMsgpack}.Encode(ev), &mp); err != nil {
		t.Fatalf("msgpack: %v", err)
	}
	if mp.Seq != 7 || mp.Level != "debug" || mp.Message != "bound" {
		t.Errorf("unexpected msgpack payload: %+v", mp)
	}
}

func TestStreamSinkFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(&buf, LevelPrint, Encoder{})
	s.Emit(&Entry{Level: LevelPrint, Message: "kept"})
	s.Emit(&Entry{Level: LevelDebug, Message: "dropped"})
	s.Emit(nil)
	if got := buf.String(); got != "[ ] kept\n" {
		t.Errorf("stream output = %q", got)
	}
}

func TestRingSinkWraps(t *testing.T) {
	r := NewRingSink(3, LevelTrace)
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		r.Emit(&Entry{Level: LevelPrint, Message: m})
	}
	got := strings.Join(r.Messages(), ",")
	if got != "c,d,e" {
		t.Errorf("ring messages = %q, want %q", got, "c,d,e")
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, Encoder{}); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if buf.String() != "[ ] c\n[ ] d\n[ ] e\n" {
		t.Errorf("dump = %q", buf.String())
	}

	r.Reset()
	if len(r.Snapshot()) != 0 {
		t.Error("Reset should empty the ring")
	}
}

func TestMultiSinkFanOut(t *testing.T) {
	a := NewRingSink(4, LevelTrace)
	b := NewRingSink(4, LevelError)
	m := NewMultiSink(LevelTrace, a, nil, b)
	m.Emit(&Entry{Level: LevelError, Message: "both"})
	m.Emit(&Entry{Level: LevelDebug, Message: "only-a"})
	if len(a.Snapshot()) != 2 {
		t.Errorf("a got %d entries, want 2", len(a.Snapshot()))
	}
	if len(b.Snapshot()) != 1 {
		t.Errorf("b got %d entries, want 1", len(b.Snapshot()))
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewHonoursMode(t *testing.T) {
	s, err := New(Config{Level: LevelOff})
	if err != nil || s.Enabled() {
		t.Errorf("LevelOff should yield Nop, got %T err=%v", s, err)
	}
	s, err = New(Config{Level: LevelDebug, Mode: ModeRing, RingSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*RingSink); !ok {
		t.Errorf("ModeRing gave %T", s)
	}
	var buf bytes.Buffer
	s, err = New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	s.Emit(&Entry{Level: LevelDebug, Message: "x"})
	if buf.String() != "[D] x\n" {
		t.Errorf("both-mode stream output = %q", buf.String())
	}
}

func TestDefaultSinkAndHelpers(t *testing.T) {
	ring := NewRingSink(8, LevelDebug)
	prev := SetDefault(ring)
	defer SetDefault(prev)

	Errorf("bad %d", 1)
	Printf("ok")
	Debugf("dbg")
	Tracef("hidden")

	snap := ring.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("got %d entries, want 3", len(snap))
	}
	if snap[0].Message != "bad 1" || snap[0].Level != LevelError {
		t.Errorf("first entry = %+v", snap[0])
	}
	if snap[0].File != "logging_test.go" {
		t.Errorf("caller file = %q, want logging_test.go", snap[0].File)
	}
	if !strings.Contains(snap[0].Func, "TestDefaultSinkAndHelpers") {
		t.Errorf("caller func = %q", snap[0].Func)
	}
}

func TestContextPropagation(t *testing.T) {
	ring := NewRingSink(2, LevelPrint)
	ctx := WithSink(context.Background(), ring)
	if FromContext(ctx) != Sink(ring) {
		t.Error("FromContext should return attached sink")
	}
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without sink should return default")
	}
	if FromContext(WithSink(context.Background(), nil)) != Nop {
		t.Error("nil sink should become Nop")
	}
}
