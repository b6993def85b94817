package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/resolve"
	"github.com/olivier-w/frameplay/internal/util"
	"github.com/olivier-w/frameplay/internal/vector"
	"github.com/olivier-w/frameplay/internal/visualizer"
)

// VectorsModel projects one 2D vector onto another.
type VectorsModel struct {
	form form
	a, b mgl64.Vec2
	proj mgl64.Vec2
	err  error

	width  int
	height int
}

// NewVectors creates the screen seeded from cfg.
func NewVectors(cfg config.Config) VectorsModel {
	v := cfg.Vectors
	num := func(f float64) string { return util.FormatFloat(f, 6) }
	m := VectorsModel{
		form: newForm(
			fieldSpec{"x", "x1", num(v.X)},
			fieldSpec{"y", "y1", num(v.Y)},
			fieldSpec{"a", "x2", num(v.A)},
			fieldSpec{"b", "y2", num(v.B)},
		),
		width:  80,
		height: 24,
	}
	m.recompute()
	return m
}

func (m *VectorsModel) recompute() {
	v := func(k string) float64 { return resolve.ToNumber(m.form.Value(k)) }
	m.a = mgl64.Vec2{v("x"), v("y")}
	m.b = mgl64.Vec2{v("a"), v("b")}
	m.proj, m.err = vector.Project2(m.a, m.b)
}

// Projection returns the projection of the first vector onto the second.
func (m VectorsModel) Projection() (mgl64.Vec2, error) { return m.proj, m.err }

func (m VectorsModel) Init() tea.Cmd { return textinput.Blink }

func (m VectorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			return m, tea.Quit
		}
		if isBack(msg) {
			return m, backCmd
		}
		cmd, changed := m.form.Update(msg)
		if changed != "" {
			m.recompute()
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	cmd, _ := m.form.Update(msg)
	return m, cmd
}

func (m VectorsModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("frameplay") + "  " + titleStyle.Render("Vectors") + "\n\n")
	b.WriteString(m.form.View(nil))
	b.WriteString("\n")

	rows := min(max(m.height-16, 6), 24)
	// Braille dots are twice as tall as wide per cell; 2 columns per row
	// keeps the plot roughly square.
	cols := min(rows*2, max(m.width-6, 20))

	scale := 0.0
	for _, v := range []mgl64.Vec2{m.a, m.b, m.proj} {
		for _, c := range v {
			if !math.IsNaN(c) && !math.IsInf(c, 0) {
				scale = max(scale, math.Abs(c))
			}
		}
	}
	if scale == 0 {
		scale = 1
	}
	u := func(v float64) float64 { return 0.5 + v/(2.2*scale) }

	c := visualizer.NewCanvas(cols, rows)
	c.Line(0, 0.5, 1, 0.5, 0)
	c.Line(0.5, 0, 0.5, 1, 0)
	c.Line(0.5, 0.5, u(m.a.X()), u(m.a.Y()), 1)
	c.Line(0.5, 0.5, u(m.b.X()), u(m.b.Y()), 2)
	if m.err == nil {
		c.Line(u(m.a.X()), u(m.a.Y()), u(m.proj.X()), u(m.proj.Y()), 0)
		c.Line(0.5, 0.5, u(m.proj.X()), u(m.proj.Y()), 3)
	}
	b.WriteString(indentBlock(c.Render(greyLayer, orangeLayer, blueLayer, redLayer), "  "))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString("  " + errorStyle.Render(m.err.Error()) + "\n")
	} else {
		r := m.proj.Len()
		if m.proj.Dot(m.b) < 0 {
			r = -r
		}
		angle := vector.ByAngle(r, m.b.X(), m.b.Y())
		ratio := vector.ByRatio(r, m.b.X(), m.b.Y())
		b.WriteString("  " + statusStyle.Render(fmt.Sprintf("projection %s   |p| %s",
			formatVec(m.proj), util.FormatFloat(m.proj.Len(), 4))) + "\n")
		b.WriteString("  " + valueStyle.Render(fmt.Sprintf("by angle %s   by ratio %s",
			formatVec(angle), formatVec(ratio))) + "\n")
	}
	b.WriteString("\n  " + helpStyle.Render(helpText("")) + "\n")
	return b.String()
}

func formatVec(v mgl64.Vec2) string {
	return "(" + util.FormatFloat(v.X(), 3) + ", " + util.FormatFloat(v.Y(), 3) + ")"
}
