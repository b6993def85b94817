package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/resolve"
	"github.com/olivier-w/frameplay/internal/spring"
	"github.com/olivier-w/frameplay/internal/util"
	"github.com/olivier-w/frameplay/internal/visualizer"
)

const (
	trailLength = 48
	targetStep  = 0.05
	depthStep   = 0.1
	maxDepth    = 1.0
)

// SimulatorModel is the dynamic spring simulator screen: a cascade of
// springs chases a target that follows the keyboard or the mouse.
type SimulatorModel struct {
	form      form
	cascade   *spring.Cascade
	target    spring.Point3
	positions []spring.Point3
	trail     *visualizer.Ring[spring.Point3]
	interval  time.Duration
	tickID    int64

	width  int
	height int
}

// NewSimulator creates the screen seeded from cfg.
func NewSimulator(cfg config.Config) SimulatorModel {
	p := cfg.SpringParams()
	num := func(v float64) string { return util.FormatFloat(v, 6) }
	center := spring.Point3{X: 0.5, Y: 0.5}

	c := spring.NewCascade(cfg.Spring.FPS, cfg.Spring.Stages, p)
	c.Reset(center)

	m := SimulatorModel{
		form: newForm(
			fieldSpec{"stiffness", "Stiffness", num(p.Stiffness)},
			fieldSpec{"damping", "Damping", num(p.Damping)},
			fieldSpec{"mass", "Mass", num(p.Mass)},
		),
		cascade:   c,
		target:    center,
		positions: make([]spring.Point3, c.Stages()),
		trail:     visualizer.NewRing[spring.Point3](trailLength),
		interval:  cfg.TickInterval,
		tickID:    nextTickID(),
		width:     80,
		height:    24,
	}
	for i := range m.positions {
		m.positions[i] = center
	}
	if m.interval <= 0 {
		m.interval = time.Second / 60
	}
	return m
}

// Target returns the point the springs are chasing.
func (m SimulatorModel) Target() spring.Point3 { return m.target }

// Positions returns the latest position of every stage.
func (m SimulatorModel) Positions() []spring.Point3 { return m.positions }

// Params returns the spring parameters in effect.
func (m SimulatorModel) Params() spring.Params { return m.cascade.Params() }

func (m SimulatorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.tickID, m.interval))
}

func (m *SimulatorModel) moveTarget(dx, dy, dz float64) {
	m.target.X = clampUnit(m.target.X + dx)
	m.target.Y = clampUnit(m.target.Y + dy)
	m.target.Z = min(max(m.target.Z+dz, -maxDepth), maxDepth)
}

func (m *SimulatorModel) applyParams() {
	m.cascade.Set(spring.Params{
		Stiffness: resolve.ToNumber(m.form.Value("stiffness")),
		Damping:   resolve.ToNumber(m.form.Value("damping")),
		Mass:      resolve.ToNumber(m.form.Value("mass")),
	})
}

func (m SimulatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			return m, tea.Quit
		}
		if isBack(msg) {
			return m, backCmd
		}
		switch msg.String() {
		case "shift+left":
			m.moveTarget(-targetStep, 0, 0)
			return m, nil
		case "shift+right":
			m.moveTarget(targetStep, 0, 0)
			return m, nil
		case "shift+up":
			m.moveTarget(0, targetStep, 0)
			return m, nil
		case "shift+down":
			m.moveTarget(0, -targetStep, 0)
			return m, nil
		case "pgup":
			m.moveTarget(0, 0, depthStep)
			return m, nil
		case "pgdown":
			m.moveTarget(0, 0, -depthStep)
			return m, nil
		}
		cmd, changed := m.form.Update(msg)
		if changed != "" {
			m.applyParams()
		}
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion {
			if x, y, ok := m.canvasPoint(msg.X, msg.Y); ok {
				m.target.X, m.target.Y = x, y
			}
		}
		return m, nil

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		m.positions = m.cascade.Step(m.target)
		m.trail.Push(m.positions[len(m.positions)-1])
		return m, tickCmd(m.tickID, m.interval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	cmd, _ := m.form.Update(msg)
	return m, cmd
}

func (m SimulatorModel) header() string {
	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("frameplay") + "  " + titleStyle.Render("Spring simulator") + "\n\n")
	b.WriteString(m.form.View(func(key string) string {
		p := m.cascade.Params()
		switch key {
		case "stiffness":
			return util.FormatFloat(p.Stiffness, 4)
		case "damping":
			return util.FormatFloat(p.Damping, 4)
		case "mass":
			return util.FormatFloat(p.Mass, 4)
		}
		return ""
	}))
	b.WriteString("\n")
	return b.String()
}

func (m SimulatorModel) canvasSize() (int, int) {
	cols := min(max(m.width-4, 20), 100)
	rows := min(max(m.height-lipgloss.Height(m.header())-5, 6), 30)
	return cols, rows
}

// canvasPoint maps a terminal cell to unit canvas coordinates.
func (m SimulatorModel) canvasPoint(x, y int) (float64, float64, bool) {
	cols, rows := m.canvasSize()
	top := lipgloss.Height(m.header()) - 1
	col, row := x-2, y-top
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	ux := (float64(col) + 0.5) / float64(cols)
	uy := 1 - (float64(row)+0.5)/float64(rows)
	return ux, uy, true
}

// project applies a simple perspective: points nearer the viewer (z > 0)
// spread away from the canvas center.
func project(p spring.Point3) (float64, float64) {
	scale := 1 + 0.5*p.Z
	return 0.5 + (p.X-0.5)*scale, 0.5 + (p.Y-0.5)*scale
}

func (m SimulatorModel) View() string {
	cols, rows := m.canvasSize()
	c := visualizer.NewCanvas(cols, rows)

	for _, p := range m.trail.Items() {
		x, y := project(p)
		c.Set(x, y, 0)
	}

	prev := m.target
	for i, p := range m.positions {
		x0, y0 := project(prev)
		x1, y1 := project(p)
		c.Line(x0, y0, x1, y1, 0)
		c.Set(x1, y1, 1+min(i, 2))
		prev = p
	}
	tx, ty := project(m.target)
	c.Set(tx, ty, 4)

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString(indentBlock(c.Render(greyLayer, orangeLayer, blueLayer, greenLayer, redLayer), "  "))
	b.WriteString("\n\n  " + statusStyle.Render(fmt.Sprintf("target x %s  y %s  z %s",
		util.FormatFloat(m.target.X, 2),
		util.FormatFloat(m.target.Y, 2),
		util.FormatFloat(m.target.Z, 2),
	)))
	if n := len(m.positions); n > 0 {
		last := m.positions[n-1]
		b.WriteString(statusStyle.Render(fmt.Sprintf("   stage %d x %s  y %s  z %s", n,
			util.FormatFloat(last.X, 2),
			util.FormatFloat(last.Y, 2),
			util.FormatFloat(last.Z, 2),
		)))
	}
	b.WriteString("\n  " + helpStyle.Render(helpText("shift+arrows/mouse target  pgup/pgdn depth")) + "\n")
	return b.String()
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
