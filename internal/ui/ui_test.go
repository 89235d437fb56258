package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"bindprop/internal/checker"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"round-trip/stored", 0, "round-trip/stored"},
		{"short", 10, "short"},
		{"round-trip/stored", 10, "round-t..."},
		{"abcdef", 3, "abc"},
		{"日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderReportPlain(t *testing.T) {
	results := []checker.Result{
		{Name: "round-trip/stored", Duration: 1500 * time.Microsecond},
		{Name: "名前", Err: errors.New("got 1, want 2"), Duration: time.Millisecond},
	}
	var buf bytes.Buffer
	if err := RenderReport(&buf, results, 80, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "  passed  round-trip/stored") || !strings.HasSuffix(lines[0], "1.50 ms") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  failed  名前") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if runewidth.StringWidth(lines[0]) != runewidth.StringWidth(lines[1]) {
		t.Errorf("columns misaligned:\n%s\n%s", lines[0], lines[1])
	}
	if strings.TrimSpace(lines[2]) != "got 1, want 2" {
		t.Errorf("error line = %q", lines[2])
	}
	if lines[3] != "1 passed, 1 failed" {
		t.Errorf("summary = %q", lines[3])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("plain report contains escapes")
	}
}

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan checker.Event)
	m := NewProgressModel("check", []string{"a", "b"}, events).(*progressModel)

	m.Update(eventMsg{Suite: "a", Status: checker.StatusPassed})
	m.Update(eventMsg{Suite: "b", Status: checker.StatusRunning})
	m.Update(eventMsg{Suite: "unknown", Status: checker.StatusFailed})
	if got := m.fraction(); got != 0.75 {
		t.Errorf("fraction = %v, want 0.75", got)
	}
	view := m.View()
	if !strings.Contains(view, "passed") || !strings.Contains(view, "running") {
		t.Errorf("view missing statuses:\n%s", view)
	}
	if !strings.Contains(view, "1 passed, 0 failed, 1 left") {
		t.Errorf("view missing tally:\n%s", view)
	}

	m.Update(eventMsg{Suite: "b", Status: checker.StatusFailed, Err: errors.New("got 3, want 4")})
	view = m.View()
	if !strings.Contains(view, "got 3, want 4") || !strings.Contains(view, "1 passed, 1 failed, 0 left") {
		t.Errorf("failure not rendered:\n%s", view)
	}

	m.Update(doneMsg{})
	if !m.done || !strings.Contains(m.View(), "done: check") {
		t.Error("done message not applied")
	}
}
