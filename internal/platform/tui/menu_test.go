package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fuego-arcade/internal/core"
	_ "github.com/vovakirdan/fuego-arcade/internal/games/dodger"
)

func TestMenuSelectsGame(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	if len(m.items) == 0 {
		t.Fatal("menu lists no games")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter did not select a game")
	}
	if m.Selected().ID != m.items[0].ID {
		t.Errorf("selected %q, expected %q", m.Selected().ID, m.items[0].ID)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	for range len(m.items) + 3 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, cmd := m.Update(keyRunes("q"))
	m = next.(MenuModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit the menu")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuViewListsTitles(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	view := m.View()
	for _, item := range m.items {
		if !strings.Contains(view, item.Title) {
			t.Errorf("menu view missing %q", item.Title)
		}
	}
}
