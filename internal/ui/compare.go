package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/oscillator"
	"github.com/olivier-w/frameplay/internal/resolve"
	"github.com/olivier-w/frameplay/internal/spring"
	"github.com/olivier-w/frameplay/internal/util"
	"github.com/olivier-w/frameplay/internal/visualizer"
)

// comparison holds three solutions of one oscillator over the time domain
// [0, 1]: the undamped closed form, the damped closed form and a spring
// stepped frame by frame.
type comparison struct {
	params   oscillator.Params
	domain   []float64
	undamped []float64
	damped   []float64
	stepped  []float64
}

// compareOscillator evaluates p over n+1 evenly spaced instants of [0, 1].
// A positive ratio overrides the damping ratio implied by p. Parameters
// are not sanitized: non-physical input shows up as NaN.
func compareOscillator(p oscillator.Params, ratio float64, n int) comparison {
	n = max(n, 0)
	if ratio > 0 {
		p.Damping = ratio * 2 * math.Sqrt(p.Stiffness*p.Mass)
	}
	c := comparison{params: p, domain: make([]float64, n+1)}
	for i := range c.domain {
		if n > 0 {
			c.domain[i] = float64(i) / float64(n)
		}
	}
	c.undamped = oscillator.Sample(p, c.domain)
	c.damped = make([]float64, len(c.domain))
	for i, t := range c.domain {
		c.damped[i] = oscillator.Damped(p, t)
	}
	dt := 1.0
	if n > 0 {
		dt = 1 / float64(n)
	}
	c.stepped = spring.Trajectory(
		spring.Params{Stiffness: p.Stiffness, Damping: p.Damping, Mass: p.Mass},
		p.InitPosition, p.InitSpeed, dt, n,
	)
	return c
}

// maxDeviation returns the largest |a[i] - b[i]| over finite pairs, or NaN
// when no pair is finite.
func maxDeviation(a, b []float64) float64 {
	d, seen := 0.0, false
	for i := range min(len(a), len(b)) {
		if !oscillator.IsPlottable(a[i]) || !oscillator.IsPlottable(b[i]) {
			continue
		}
		d, seen = max(d, math.Abs(a[i]-b[i])), true
	}
	if !seen {
		return math.NaN()
	}
	return d
}

func plottable(values []float64) bool {
	for _, v := range values {
		if !oscillator.IsPlottable(v) {
			return false
		}
	}
	return true
}

// CompareModel is the harmonic comparison screen.
type CompareModel struct {
	form      form
	maxFrames int
	result    comparison

	width  int
	height int
}

// NewCompare creates the screen seeded from cfg.
func NewCompare(cfg config.Config) CompareModel {
	o := cfg.Oscillator
	num := func(v float64) string { return util.FormatFloat(v, 6) }
	m := CompareModel{
		form: newForm(
			fieldSpec{"c", "c (damping)", num(o.Damping)},
			fieldSpec{"n", "n", "500"},
			fieldSpec{"d0", "d0", num(o.InitPosition)},
			fieldSpec{"v0", "v0", num(o.InitSpeed)},
			fieldSpec{"k", "k (stiffness)", num(o.Stiffness)},
			fieldSpec{"m", "m (mass)", num(o.Mass)},
			fieldSpec{"fz", "fz (ratio)", "0"},
		),
		maxFrames: cfg.CompareMaxFrames,
		width:     80,
		height:    24,
	}
	if m.maxFrames <= 0 {
		m.maxFrames = config.Default().CompareMaxFrames
	}
	m.recompute()
	return m
}

func (m *CompareModel) recompute() {
	v := func(k string) float64 { return resolve.ToNumber(m.form.Value(k)) }
	p := oscillator.Params{
		Damping:      v("c"),
		Stiffness:    v("k"),
		Mass:         v("m"),
		InitPosition: v("d0"),
		InitSpeed:    v("v0"),
	}
	n := resolve.ToSafeNatural(m.form.Value("n"), m.maxFrames)
	m.result = compareOscillator(p, v("fz"), n)
}

// Samples returns the number of samples currently compared.
func (m CompareModel) Samples() int { return len(m.result.domain) }

func (m CompareModel) Init() tea.Cmd { return textinput.Blink }

func (m CompareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m CompareModel) View() string {
	r := m.result
	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("frameplay") + "  " + titleStyle.Render("Harmonic comparison") + "\n\n")
	b.WriteString(m.form.View(func(key string) string {
		if key == "n" {
			return fmt.Sprint(len(r.domain) - 1)
		}
		return ""
	}))
	b.WriteString("\n")

	cols := min(max(m.width-6, 20), 100)
	rows := min(max(m.height-20, 6), 20)
	series := []struct {
		name   string
		values []float64
		layer  int
	}{
		{"undamped", r.undamped, 0},
		{"damped", r.damped, 1},
		{"stepped", r.stepped, 2},
	}

	scale := 0.0
	for _, s := range series {
		for _, v := range s.values {
			if oscillator.IsPlottable(v) {
				scale = max(scale, math.Abs(v))
			}
		}
	}
	if scale == 0 {
		scale = 1
	}

	c := visualizer.NewCanvas(cols, rows)
	c.Line(0, 0.5, 1, 0.5, 0)
	for _, s := range series {
		if !plottable(s.values) {
			continue
		}
		for i, t := range r.domain {
			c.Set(t, 0.5+s.values[i]/(2*scale), s.layer+1)
		}
	}
	b.WriteString(indentBlock(c.Render(greyLayer, blueLayer, orangeLayer, greenLayer), "  "))
	b.WriteString("\n\n")

	legend := []string{}
	styles := []func(...string) string{blueLayer.Render, orangeLayer.Render, greenLayer.Render}
	for i, s := range series {
		label := s.name
		if !plottable(s.values) {
			label += " " + errorStyle.Render(visualizer.ErrorMarker)
		}
		legend = append(legend, styles[i]("●")+" "+label)
	}
	b.WriteString("  " + strings.Join(legend, "   ") + "\n")
	b.WriteString("  " + statusStyle.Render(fmt.Sprintf("ω %s  ζ %s  max |damped − stepped| %s",
		util.FormatFloat(oscillator.AngularFrequency(r.params), 4),
		util.FormatFloat(oscillator.DampingRatio(r.params), 4),
		util.FormatFloat(maxDeviation(r.damped, r.stepped), 9),
	)) + "\n")
	b.WriteString("\n  " + helpStyle.Render(helpText("")) + "\n")
	return b.String()
}
