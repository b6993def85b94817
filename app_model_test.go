package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/ui"
)

func TestAppModelSelectionOpensScreen(t *testing.T) {
	m := newAppModel(config.Default())
	m.width, m.height = 100, 40

	model, cmd := m.Update(ui.ScreenSelectedMsg{Screen: ui.ScreenVectors})
	if cmd == nil {
		t.Fatal("expected init command")
	}
	app, ok := model.(appModel)
	if !ok {
		t.Fatalf("expected appModel, got %T", model)
	}
	if app.phase != phaseScreen {
		t.Fatalf("expected phaseScreen, got %v", app.phase)
	}
	if _, ok := app.screen.(ui.VectorsModel); !ok {
		t.Fatalf("expected VectorsModel, got %T", app.screen)
	}
}

func TestAppModelBackReturnsToMenu(t *testing.T) {
	m := newAppModelAt(config.Default(), ui.ScreenCompare)

	model, _ := m.Update(ui.BackMsg{})
	app := model.(appModel)
	if app.phase != phaseMenu {
		t.Fatalf("expected phaseMenu, got %v", app.phase)
	}
	if app.screen != nil {
		t.Fatal("expected screen to be released")
	}
}

func TestAppModelForwardsToScreen(t *testing.T) {
	m := newAppModelAt(config.Default(), ui.ScreenExplicit)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected back command from screen")
	}
	if _, ok := cmd().(ui.BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", cmd())
	}
}

func TestAppModelTracksWindowSize(t *testing.T) {
	m := newAppModel(config.Default())
	model, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	app := model.(appModel)
	if app.width != 90 || app.height != 30 {
		t.Fatalf("expected 90x30, got %dx%d", app.width, app.height)
	}
}

func TestNewScreenDefaultsToExplicit(t *testing.T) {
	if _, ok := newScreen(config.Default(), ui.Screen(42)).(ui.ExplicitModel); !ok {
		t.Fatal("expected explicit screen for unknown id")
	}
}
