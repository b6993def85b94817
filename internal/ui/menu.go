package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifies one of the playground screens.
type Screen int

const (
	ScreenExplicit Screen = iota
	ScreenSimulator
	ScreenCompare
	ScreenVectors
)

// ErrUnknownScreen is returned by ParseScreen for an unrecognized name.
var ErrUnknownScreen = errors.New("ui: unknown screen")

var screenInfo = []struct {
	name, title, desc string
}{
	ScreenExplicit:  {"explicit", "Explicit functions", "sample a function family and play it frame by frame"},
	ScreenSimulator: {"simulator", "Spring simulator", "three cascaded springs chasing a target"},
	ScreenCompare:   {"compare", "Harmonic comparison", "closed form against damped and stepped solutions"},
	ScreenVectors:   {"vectors", "Vectors", "projection of one vector onto another"},
}

// Screens returns every screen in menu order.
func Screens() []Screen {
	return []Screen{ScreenExplicit, ScreenSimulator, ScreenCompare, ScreenVectors}
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenInfo) {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return screenInfo[s].name
}

// ParseScreen looks a screen up by its short name.
func ParseScreen(name string) (Screen, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Screens() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

type screenItem Screen

func (i screenItem) Title() string       { return screenInfo[i].title }
func (i screenItem) Description() string { return screenInfo[i].desc }
func (i screenItem) FilterValue() string { return screenInfo[i].name }

// ScreenSelectedMsg is sent when a screen is picked from the menu.
type ScreenSelectedMsg struct {
	Screen Screen
}

// MenuModel lists the playground screens.
type MenuModel struct {
	list list.Model
}

// NewMenu creates the screen menu.
func NewMenu() MenuModel {
	items := make([]list.Item, 0, len(screenInfo))
	for _, s := range Screens() {
		items = append(items, screenItem(s))
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "frameplay"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = headerStyle

	return MenuModel{list: l}
}

// Selected returns the highlighted screen.
func (m MenuModel) Selected() Screen {
	if it, ok := m.list.SelectedItem().(screenItem); ok {
		return Screen(it)
	}
	return ScreenExplicit
}

func (m MenuModel) Init() tea.Cmd {
	return tea.SetWindowTitle("frameplay")
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			s := m.Selected()
			return m, func() tea.Msg { return ScreenSelectedMsg{Screen: s} }
		case "q", "esc", "ctrl+c":
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	return m.list.View()
}
