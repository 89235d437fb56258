package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bindprop/internal/checker"
)

type progressModel struct {
	title   string
	events  <-chan checker.Event
	spinner spinner.Model
	prog    progress.Model
	items   []suiteItem
	index   map[string]int
	width   int
	done    bool
}

type suiteItem struct {
	name   string
	status checker.Status
	err    error
}

type eventMsg checker.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders suite progress
// until events is closed.
func NewProgressModel(title string, suites []string, events <-chan checker.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	items := make([]suiteItem, 0, len(suites))
	index := make(map[string]int, len(suites))
	for i, name := range suites {
		items = append(items, suiteItem{name: name, status: checker.StatusQueued})
		index[name] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(checker.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(m.tally())
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-4, 20)
	for _, item := range m.items {
		status := item.status.String()
		statusStyled := styleStatus(status).Render(fmt.Sprintf("%*s", statusWidth, status))
		fmt.Fprintf(&b, "  %s %s\n", statusStyled, truncate(item.name, nameWidth))
		if item.err != nil {
			fmt.Fprintf(&b, "  %*s %s\n", statusWidth, "", truncate(item.err.Error(), nameWidth))
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev checker.Event) tea.Cmd {
	idx, ok := m.index[ev.Suite]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status
	m.items[idx].err = ev.Err
	return m.prog.SetPercent(m.fraction())
}

// tally summarises verdicts so far, e.g. "3 passed, 1 failed, 10 left".
func (m *progressModel) tally() string {
	var passed, failed int
	for _, item := range m.items {
		switch item.status {
		case checker.StatusPassed:
			passed++
		case checker.StatusFailed:
			failed++
		}
	}
	left := len(m.items) - passed - failed
	return fmt.Sprintf("%d passed, %d failed, %d left", passed, failed, left)
}

// fraction counts finished suites fully and running ones by half.
func (m *progressModel) fraction() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var total float64
	for _, item := range m.items {
		switch item.status {
		case checker.StatusPassed, checker.StatusFailed:
			total += 1.0
		case checker.StatusRunning:
			total += 0.5
		}
	}
	return total / float64(len(m.items))
}
