package ui

import tea "github.com/charmbracelet/bubbletea"

// Screens are made of text inputs, so plain letters always type. Commands
// use control keys.
func isQuit(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+c"
}

func isBack(msg tea.KeyMsg) bool {
	return msg.String() == "esc"
}

func helpText(extra string) string {
	s := "↑/↓ field"
	if extra != "" {
		s += "  " + extra
	}
	s += "  esc menu  ctrl+c quit"
	return s
}
