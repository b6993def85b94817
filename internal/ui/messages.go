package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives a screen's frame loop. Each screen instance owns a tick
// id, so ticks still in flight for a closed screen are ignored.
type tickMsg struct {
	id int64
	at time.Time
}

var tickIDs atomic.Int64

func nextTickID() int64 { return tickIDs.Add(1) }

// BackMsg asks the host to return to the screen menu.
type BackMsg struct{}

type auditionDoneMsg struct {
	err error
}

func tickCmd(id int64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{id: id, at: t}
	})
}

func backCmd() tea.Msg { return BackMsg{} }
