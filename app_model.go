package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/ui"
)

type appPhase uint8

const (
	phaseMenu appPhase = iota
	phaseScreen
)

// appModel hosts the screen menu and the open screen.
type appModel struct {
	cfg    config.Config
	menu   ui.MenuModel
	screen tea.Model
	active ui.Screen
	phase  appPhase
	width  int
	height int
}

func newAppModel(cfg config.Config) appModel {
	return appModel{cfg: cfg, menu: ui.NewMenu(), phase: phaseMenu}
}

// newAppModelAt starts directly on screen s.
func newAppModelAt(cfg config.Config, s ui.Screen) appModel {
	m := newAppModel(cfg)
	m.phase = phaseScreen
	m.active = s
	m.screen = newScreen(cfg, s)
	return m
}

func newScreen(cfg config.Config, s ui.Screen) tea.Model {
	switch s {
	case ui.ScreenSimulator:
		return ui.NewSimulator(cfg)
	case ui.ScreenCompare:
		return ui.NewCompare(cfg)
	case ui.ScreenVectors:
		return ui.NewVectors(cfg)
	default:
		return ui.NewExplicit(cfg)
	}
}

func (m appModel) Init() tea.Cmd {
	if m.phase == phaseScreen {
		return tea.Batch(tea.SetWindowTitle("frameplay · "+m.active.String()), m.screen.Init())
	}
	return m.menu.Init()
}

func (m appModel) open(s ui.Screen) (appModel, tea.Cmd) {
	m.phase = phaseScreen
	m.active = s
	m.screen = newScreen(m.cfg, s)

	cmds := []tea.Cmd{tea.SetWindowTitle("frameplay · " + s.String()), m.screen.Init()}
	if m.width > 0 || m.height > 0 {
		w, h := m.width, m.height
		cmds = append(cmds, func() tea.Msg {
			return tea.WindowSizeMsg{Width: w, Height: h}
		})
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ui.ScreenSelectedMsg:
		return m.open(msg.Screen)

	case ui.BackMsg:
		m.phase = phaseMenu
		m.screen = nil
		return m, m.menu.Init()
	}

	if m.phase == phaseScreen {
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(msg)
		return m, cmd
	}

	model, cmd := m.menu.Update(msg)
	if menu, ok := model.(ui.MenuModel); ok {
		m.menu = menu
	}
	return m, cmd
}

func (m appModel) View() string {
	if m.phase == phaseScreen {
		return m.screen.View()
	}
	return m.menu.View()
}
