// Package ui renders the parsed-entry preview browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rijikit/riji/internal/diary"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// Model owns Bubble Tea state for browsing parsed entries read-only.
type Model struct {
	entries []diary.Entry
	index   int

	viewport        viewport.Model
	ready           bool
	importRequested bool
}

// ImportRequested reports whether the user confirmed the import with i.
func (m Model) ImportRequested() bool {
	return m.importRequested
}

// NewModel seeds a preview over the parsed entries. The caller guarantees at
// least one entry.
func NewModel(entries []diary.Entry) Model {
	return Model{entries: entries}
}

// Init performs no IO; all data arrives pre-parsed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires navigation between entries and scrolling within one.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.current().Content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "i":
			m.importRequested = true
			return m, tea.Quit
		case "left", "h":
			return m.gotoEntry(m.index - 1), nil
		case "right", "l":
			return m.gotoEntry(m.index + 1), nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) gotoEntry(index int) Model {
	if index < 0 || index >= len(m.entries) {
		return m
	}
	m.index = index
	if m.ready {
		m.viewport.SetContent(m.current().Content)
		m.viewport.GotoTop()
	}
	return m
}

func (m Model) current() diary.Entry {
	return m.entries[m.index]
}

// View renders the frame: header, metadata, scrollable body, footer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m Model) headerView() string {
	entry := m.current()

	title := entry.Date
	if entry.Weekday != "" {
		title += "  " + entry.Weekday
	}

	var meta []string
	for _, field := range []string{entry.Time, entry.Weather, entry.Temperature, entry.Location} {
		if field != "" {
			meta = append(meta, field)
		}
	}
	lines := headerStyle.Render(title)
	if len(meta) > 0 {
		lines += "\n" + metaStyle.Render(strings.Join(meta, " · "))
	}
	if len(entry.Attachments) > 0 {
		lines += "\n" + metaStyle.Render(fmt.Sprintf("%d attachment(s)", len(entry.Attachments)))
	}
	return lines + "\n"
}

func (m Model) footerView() string {
	return footerStyle.Render(fmt.Sprintf(
		"\nEntry %d of %d   <-/h prev  ->/l next  j/k scroll  i import  q quit",
		m.index+1, len(m.entries)))
}
