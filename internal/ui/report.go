package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bindprop/internal/checker"
)

const statusWidth = 8

// RenderReport writes one aligned line per result followed by a totals
// line. Names and error texts are truncated to fit width display columns.
func RenderReport(w io.Writer, results []checker.Result, width int, color bool) error {
	nameWidth := 0
	for _, r := range results {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
	}
	nameWidth = min(nameWidth, max(width-statusWidth-16, 20))

	var b strings.Builder
	for _, r := range results {
		status := checker.StatusPassed.String()
		if !r.Passed() {
			status = checker.StatusFailed.String()
		}
		label := fmt.Sprintf("%*s", statusWidth, status)
		if color {
			label = styleStatus(status).Render(label)
		}
		name := pad(truncate(r.Name, nameWidth), nameWidth)
		fmt.Fprintf(&b, "%s  %s %8.2f ms\n", label, name, float64(r.Duration.Microseconds())/1000)
		if r.Err != nil {
			fmt.Fprintf(&b, "%*s  %s\n", statusWidth, "", truncate(r.Err.Error(), max(width-statusWidth-2, 20)))
		}
	}

	passed, failed := checker.Count(results)
	summary := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if color {
		st := styleStatus("passed").Bold(true)
		if failed > 0 {
			st = styleStatus("failed").Bold(true)
		}
		summary = st.Render(summary)
	}
	b.WriteString(summary)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "passed":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "failed":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "running":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// pad right-fills value to width display columns.
func pad(value string, width int) string {
	return runewidth.FillRight(value, width)
}
