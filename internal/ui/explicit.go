package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/playback"
	"github.com/olivier-w/frameplay/internal/resolve"
	"github.com/olivier-w/frameplay/internal/sampler"
	"github.com/olivier-w/frameplay/internal/sonify"
	"github.com/olivier-w/frameplay/internal/util"
	"github.com/olivier-w/frameplay/internal/visualizer"
)

// Fields relevant to each function family. Everything else is hidden.
var kindFields = map[sampler.Kind][]string{
	sampler.Linear:             nil,
	sampler.Monomial:           {"exponent"},
	sampler.Exponential:        {"base"},
	sampler.QuadraticBezier:    {"x1", "y1"},
	sampler.CubicBezier:        {"x1", "y1", "x2", "y2"},
	sampler.HarmonicOscillator: {"damping", "stiffness", "mass", "d0", "v0", "hp"},
}

var variantFields = []string{"exponent", "base", "x1", "y1", "x2", "y2", "damping", "stiffness", "mass", "d0", "v0", "hp"}

// ExplicitModel is the explicit functions screen: a function family and
// its parameters drive two frame cursors, a linear counter and the value.
type ExplicitModel struct {
	form     form
	kind     sampler.Kind
	session  *playback.Session
	frame    playback.Frame
	loop     LoopMode
	progress progress.Model
	interval time.Duration
	tickID   int64

	audio      *sonify.Player
	sonifyOpts sonify.Options
	status     string

	width  int
	height int
}

// NewExplicit creates the screen seeded from cfg.
func NewExplicit(cfg config.Config) ExplicitModel {
	e, o := cfg.Explicit, cfg.Oscillator
	num := func(v float64) string { return util.FormatFloat(v, 6) }
	kind, err := sampler.ParseKind(e.Function)
	if err != nil {
		kind = sampler.Linear
	}

	p := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)

	m := ExplicitModel{
		form: newForm(
			fieldSpec{"n", "n", num(e.N)},
			fieldSpec{"from", "from", num(e.From)},
			fieldSpec{"to", "to", num(e.N)},
			fieldSpec{"exponent", "exponent", num(e.Exponent)},
			fieldSpec{"base", "base", num(e.Base)},
			fieldSpec{"x1", "x1", num(e.X1)},
			fieldSpec{"y1", "y1", num(e.Y1)},
			fieldSpec{"x2", "x2", num(e.X2)},
			fieldSpec{"y2", "y2", num(e.Y2)},
			fieldSpec{"damping", "Damping", num(o.Damping)},
			fieldSpec{"stiffness", "Stiffness", num(o.Stiffness)},
			fieldSpec{"mass", "Mass", num(o.Mass)},
			fieldSpec{"d0", "Initial Position", num(o.InitPosition)},
			fieldSpec{"v0", "Initial Velocity", num(o.InitSpeed)},
			fieldSpec{"hp", "Half-periods", num(o.HalfPeriods)},
		),
		kind:     kind,
		session:  playback.NewSession(resolve.New(cfg.Limits()), sampler.NewMemo()),
		progress: p,
		interval: cfg.TickInterval,
		tickID:   nextTickID(),
		audio:    sonify.NewPlayer(cfg.Sonify.SampleRate),
		sonifyOpts: sonify.Options{
			SampleRate: cfg.Sonify.SampleRate,
			CarrierHz:  cfg.Sonify.CarrierHz,
			Duration:   cfg.Sonify.Duration,
		},
	}
	if m.interval <= 0 {
		m.interval = time.Second / 60
	}
	m.setKind(kind)
	m.pass()
	return m
}

// Kind returns the active function family.
func (m ExplicitModel) Kind() sampler.Kind { return m.kind }

// Frame returns the outcome of the latest pass.
func (m ExplicitModel) Frame() playback.Frame { return m.frame }

func (m ExplicitModel) inputs() resolve.Inputs {
	v := func(k string) resolve.Raw { return m.form.Value(k) }
	return resolve.Inputs{
		N: v("n"), From: v("from"), To: v("to"),
		X1: v("x1"), Y1: v("y1"), X2: v("x2"), Y2: v("y2"),
		Base: v("base"), Exponent: v("exponent"),
		Damping: v("damping"), Stiffness: v("stiffness"), Mass: v("mass"),
		InitPosition: v("d0"), InitSpeed: v("v0"), HalfPeriods: v("hp"),
	}
}

func (m *ExplicitModel) pass() {
	m.frame = m.session.Pass(m.kind, m.inputs())
}

func (m *ExplicitModel) setKind(k sampler.Kind) {
	m.kind = k
	shown := make(map[string]bool)
	for _, f := range kindFields[k] {
		shown[f] = true
	}
	var hidden []string
	for _, f := range variantFields {
		if !shown[f] {
			hidden = append(hidden, f)
		}
	}
	m.form.SetHidden(hidden...)
}

func (m *ExplicitModel) cycleKind(dir int) {
	kinds := sampler.Kinds()
	next := (int(m.kind) + dir + len(kinds)) % len(kinds)
	m.setKind(kinds[next])
	m.pass()
}

func (m ExplicitModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.tickID, m.interval))
}

func (m ExplicitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.audio.Close()
			return m, tea.Quit
		}
		if isBack(msg) {
			m.audio.Close()
			return m, backCmd
		}
		switch msg.String() {
		case "tab":
			m.cycleKind(1)
			return m, nil
		case "shift+tab":
			m.cycleKind(-1)
			return m, nil
		case "ctrl+l":
			m.loop = m.loop.Toggle()
			m.session.SetLoop(m.loop.Looping())
			return m, nil
		case "ctrl+p":
			m.status = "auditioning..."
			return m, auditionCmd(m.audio, sonify.Render(m.frame.Value, m.sonifyOpts))
		}
		cmd, changed := m.form.Update(msg)
		if changed == "n" {
			// A new sample count plays the whole range.
			m.form.SetValue("to", m.form.Value("n"))
		}
		if changed != "" {
			m.pass()
		}
		return m, cmd

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		m.session.Step()
		return m, tickCmd(m.tickID, m.interval)

	case auditionDoneMsg:
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("audio failed: %v", msg.err)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-30, 10), 60)
		return m, nil
	}

	cmd, _ := m.form.Update(msg)
	return m, cmd
}

func auditionCmd(p *sonify.Player, pcm []byte) tea.Cmd {
	return func() tea.Msg {
		return auditionDoneMsg{err: p.Play(pcm)}
	}
}

func (m ExplicitModel) resolvedValue(key string) string {
	r := m.frame.Resolved
	f := func(v float64) string { return util.FormatFloat(v, 5) }
	switch key {
	case "n":
		return fmt.Sprint(r.N)
	case "from":
		return fmt.Sprint(m.frame.Bounds.From)
	case "to":
		return fmt.Sprint(m.frame.Bounds.To)
	case "exponent":
		return f(r.Exponent)
	case "base":
		return f(r.Base)
	case "x1":
		return f(r.X1)
	case "y1":
		return f(r.Y1)
	case "x2":
		return f(r.X2)
	case "y2":
		return f(r.Y2)
	case "damping":
		return f(r.Harmonic.Damping)
	case "stiffness":
		return f(r.Harmonic.Stiffness)
	case "mass":
		return f(r.Harmonic.Mass)
	case "d0":
		return f(r.Harmonic.InitPosition)
	case "v0":
		return f(r.Harmonic.InitSpeed)
	case "hp":
		return f(r.Harmonic.HalfPeriods)
	}
	return ""
}

func (m ExplicitModel) View() string {
	w := m.width
	if w < 30 {
		w = 80
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("frameplay") + "  " + titleStyle.Render("Explicit functions") + "\n\n")
	b.WriteString(m.form.View(m.resolvedValue))
	b.WriteString("\n  " + m.kindSelector() + "\n\n")

	cols := min(max(w-6, 20), 64)
	b.WriteString(indentBlock(m.renderCurves(cols, 8), "  "))
	b.WriteString("\n\n  " + m.renderStatus() + "\n")

	if curve := visualizer.Curve(m.frame.Value.Values(), cols-10, 6, m.kind.String()); curve != "" {
		b.WriteString("\n" + indentBlock(curve, "  ") + "\n")
	}
	if m.status != "" {
		b.WriteString("\n  " + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n  " + helpStyle.Render(helpText("tab function  ctrl+l loop  ctrl+p audition")) + "\n")
	return b.String()
}

func (m ExplicitModel) kindSelector() string {
	parts := make([]string, 0, len(sampler.Kinds()))
	for _, k := range sampler.Kinds() {
		if k == m.kind {
			parts = append(parts, selectedStyle.Render("["+k.String()+"]"))
			continue
		}
		parts = append(parts, helpStyle.Render(k.String()))
	}
	return strings.Join(parts, " ")
}

// renderCurves plots counter against value for every sample and marks the
// current cursor position on top.
func (m ExplicitModel) renderCurves(cols, rows int) string {
	c := visualizer.NewCanvas(cols, rows)
	xs := m.frame.Counter.Values()
	ys := visualizer.Normalize(m.frame.Value.Values())
	for i := range min(len(xs), len(ys)) {
		c.Set(xs[i], ys[i], 0)
	}
	pos := m.session.Value().Position()
	if pos < len(xs) && pos < len(ys) {
		c.Set(xs[pos], ys[pos], 1)
	}
	return c.Render(blueLayer, orangeLayer)
}

func (m ExplicitModel) renderStatus() string {
	counter, value := m.session.Counter(), m.session.Value()
	from, to := m.frame.Bounds.From, m.frame.Bounds.To
	ratio := 1.0
	if to > from {
		ratio = float64(counter.Position()-from) / float64(to-from)
	}
	x, _ := counter.Value()
	y, _ := value.Value()
	return fmt.Sprintf("%s %s  x %s  y %s  %s #%d",
		m.progress.ViewAs(ratio),
		valueStyle.Render(fmt.Sprintf("%d/%d", counter.Position(), to)),
		util.FormatFloat(x, 3),
		util.FormatFloat(y, 3),
		m.loop.Icon(),
		m.session.Restarts(),
	)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
