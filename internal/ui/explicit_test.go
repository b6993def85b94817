package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/sampler"
)

func update[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(M)
	if !ok {
		t.Fatalf("expected %T, got %T", m, next)
	}
	return got, cmd
}

func TestExplicitStartsFromConfig(t *testing.T) {
	m := NewExplicit(config.Default())
	if m.Kind() != sampler.Linear {
		t.Fatalf("expected Linear, got %v", m.Kind())
	}
	f := m.Frame()
	if f.Resolved.N != 120 || f.Bounds.To != 120 {
		t.Fatalf("expected n=120 to=120, got n=%d to=%d", f.Resolved.N, f.Bounds.To)
	}
	if f.Value.Len() != 121 {
		t.Fatalf("expected 121 samples, got %d", f.Value.Len())
	}
}

func TestExplicitUnknownFunctionFallsBackToLinear(t *testing.T) {
	cfg := config.Default()
	cfg.Explicit.Function = "sawtooth"
	if k := NewExplicit(cfg).Kind(); k != sampler.Linear {
		t.Fatalf("expected Linear, got %v", k)
	}
}

func TestExplicitEditingNAlsoSetsTo(t *testing.T) {
	m := NewExplicit(config.Default())
	if m.form.Focused() != "n" {
		t.Fatalf("expected n focused, got %q", m.form.Focused())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.form.Value("to"); got != "12" {
		t.Fatalf("expected to=12, got %q", got)
	}
	f := m.Frame()
	if f.Resolved.N != 12 || f.Bounds.To != 12 || f.Value.Len() != 13 {
		t.Fatalf("unexpected frame: n=%d to=%d len=%d", f.Resolved.N, f.Bounds.To, f.Value.Len())
	}
}

func TestExplicitTabCyclesFunctionFamily(t *testing.T) {
	m := NewExplicit(config.Default())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Kind() != sampler.Monomial {
		t.Fatalf("expected Monomial, got %v", m.Kind())
	}
	if m.form.hidden["exponent"] || !m.form.hidden["base"] {
		t.Fatal("expected only the exponent field to be visible")
	}
	if m.Frame().Variant.Kind != sampler.Monomial {
		t.Fatalf("expected a Monomial pass, got %v", m.Frame().Variant.Kind)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Kind() != sampler.HarmonicOscillator {
		t.Fatalf("expected wrap to Harmonic Oscillator, got %v", m.Kind())
	}
	for _, k := range []string{"damping", "stiffness", "mass", "d0", "v0", "hp"} {
		if m.form.hidden[k] {
			t.Fatalf("expected %s visible for the oscillator", k)
		}
	}
}

func TestExplicitTickAdvancesOwnCursorsOnly(t *testing.T) {
	m := NewExplicit(config.Default())

	m, cmd := update(t, m, tickMsg{id: m.tickID})
	if cmd == nil {
		t.Fatal("expected next tick to be scheduled")
	}
	if pos := m.session.Counter().Position(); pos != 1 {
		t.Fatalf("expected counter at 1, got %d", pos)
	}

	m, cmd = update(t, m, tickMsg{id: m.tickID + 1000})
	if cmd != nil {
		t.Fatal("expected stale tick to be dropped")
	}
	if pos := m.session.Counter().Position(); pos != 1 {
		t.Fatalf("expected counter to stay at 1, got %d", pos)
	}
}

func TestExplicitLoopToggle(t *testing.T) {
	m := NewExplicit(config.Default())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.loop != LoopOff {
		t.Fatalf("expected once, got %v", m.loop)
	}
	if !strings.Contains(m.View(), "[once]") {
		t.Fatal("expected loop indicator in view")
	}
}

func TestExplicitEscReturnsToMenu(t *testing.T) {
	m := NewExplicit(config.Default())
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected back command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", cmd())
	}
}

func TestExplicitViewShowsResolvedValues(t *testing.T) {
	m := NewExplicit(config.Default())
	m.form.SetValue("n", "abc")
	m.pass()
	view := m.View()
	if !strings.Contains(view, "→ 0") {
		t.Fatal("expected resolved n in view")
	}
	if !strings.Contains(view, "[Linear]") {
		t.Fatal("expected active function in selector")
	}
}

func TestLoopModeToggle(t *testing.T) {
	if LoopOn.Toggle() != LoopOff || LoopOff.Toggle() != LoopOn {
		t.Fatal("expected toggle to alternate")
	}
	if !LoopOn.Looping() || LoopOff.Looping() {
		t.Fatal("expected only LoopOn to loop")
	}
	if LoopOn.Icon() != "[loop]" || LoopOff.Icon() != "[once]" {
		t.Fatalf("unexpected icons %q %q", LoopOn.Icon(), LoopOff.Icon())
	}
}
