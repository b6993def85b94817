package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseScreen(t *testing.T) {
	for _, s := range Screens() {
		got, err := ParseScreen(" " + s.String() + " ")
		if err != nil || got != s {
			t.Fatalf("expected %v, got %v (%v)", s, got, err)
		}
	}
	if _, err := ParseScreen("Compare"); err != nil {
		t.Fatalf("expected case-insensitive match, got %v", err)
	}
	if _, err := ParseScreen("lissajous"); !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestMenuEnterSelectsHighlightedScreen(t *testing.T) {
	m := NewMenu()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Selected() != ScreenSimulator {
		t.Fatalf("expected simulator highlighted, got %v", m.Selected())
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	msg, ok := cmd().(ScreenSelectedMsg)
	if !ok {
		t.Fatalf("expected ScreenSelectedMsg, got %T", cmd())
	}
	if msg.Screen != ScreenSimulator {
		t.Fatalf("expected simulator, got %v", msg.Screen)
	}
}

func TestMenuQuit(t *testing.T) {
	_, cmd := update(t, NewMenu(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
