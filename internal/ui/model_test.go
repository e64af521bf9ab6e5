package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rijikit/riji/internal/diary"
)

func testEntries() []diary.Entry {
	return []diary.Entry{
		{Date: "2025-02-08", Weekday: "周六", Weather: "晴", Content: "第一天。"},
		{Date: "2025-02-09", Weekday: "周日", Content: "第二天。"},
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestViewShowsFirstEntry(t *testing.T) {
	m := sized(t, NewModel(testEntries()))

	view := m.View()
	if !strings.Contains(view, "2025-02-08") {
		t.Errorf("view missing date:\n%s", view)
	}
	if !strings.Contains(view, "第一天。") {
		t.Errorf("view missing body:\n%s", view)
	}
	if !strings.Contains(view, "Entry 1 of 2") {
		t.Errorf("view missing position:\n%s", view)
	}
}

func TestNavigationBetweenEntries(t *testing.T) {
	m := sized(t, NewModel(testEntries()))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	if !strings.Contains(m.View(), "2025-02-09") {
		t.Errorf("right key did not advance:\n%s", m.View())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	if !strings.Contains(m.View(), "Entry 2 of 2") {
		t.Errorf("navigation ran past the last entry:\n%s", m.View())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	if !strings.Contains(m.View(), "2025-02-08") {
		t.Errorf("left key did not go back:\n%s", m.View())
	}
}

func TestImportKeyQuitsWithRequest(t *testing.T) {
	m := sized(t, NewModel(testEntries()))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	m = updated.(Model)
	if !m.ImportRequested() {
		t.Fatalf("i did not request the import")
	}
	if cmd == nil || cmd() != tea.Quit() {
		t.Fatalf("i did not quit the program")
	}
}

func TestQuitKey(t *testing.T) {
	m := sized(t, NewModel(testEntries()))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q did not produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("q produced %T, want tea.QuitMsg", msg)
	}
}
