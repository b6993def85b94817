package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/vector"
)

func TestVectorsProjectsDefaults(t *testing.T) {
	m := NewVectors(config.Default())
	p, err := m.Projection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ApproxEqual(mgl64.Vec2{160, 80}) {
		t.Fatalf("expected (160, 80), got %v", p)
	}
	if !strings.Contains(m.View(), "(160, 80)") {
		t.Fatal("expected projection readout in view")
	}
}

func TestVectorsZeroTarget(t *testing.T) {
	m := NewVectors(config.Default())
	m.form.SetValue("a", "0")
	m.form.SetValue("b", "")
	m.recompute()

	if _, err := m.Projection(); !errors.Is(err, vector.ErrZeroVector) {
		t.Fatalf("expected ErrZeroVector, got %v", err)
	}
	if !strings.Contains(m.View(), vector.ErrZeroVector.Error()) {
		t.Fatal("expected error in view")
	}
}

func TestVectorsEditRecomputes(t *testing.T) {
	m := NewVectors(config.Default())
	// x1 is focused; "100" becomes "10".
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	p, _ := m.Projection()
	// (10,200)·(200,100) = 22000, /50000 = 0.44
	if !p.ApproxEqual(mgl64.Vec2{88, 44}) {
		t.Fatalf("expected (88, 44), got %v", p)
	}
}
