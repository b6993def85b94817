package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/frameplay/internal/sampler"
	"github.com/olivier-w/frameplay/internal/ui"
)

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "frameplay.yaml")
}

func TestBuildModelAppliesOverrides(t *testing.T) {
	m, err := buildModel(missingConfig(t), "explicit", "cubic-bezier")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.phase != phaseScreen || m.active != ui.ScreenExplicit {
		t.Fatalf("expected explicit screen, got phase %v screen %v", m.phase, m.active)
	}
	if got := m.cfg.Explicit.Function; got != sampler.CubicBezier.String() {
		t.Fatalf("expected Cubic-Bezier, got %q", got)
	}
	if em, ok := m.screen.(ui.ExplicitModel); !ok || em.Kind() != sampler.CubicBezier {
		t.Fatalf("expected explicit screen on Cubic-Bezier, got %T", m.screen)
	}
}

func TestBuildModelDefaultsToMenu(t *testing.T) {
	m, err := buildModel(missingConfig(t), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.phase != phaseMenu {
		t.Fatalf("expected phaseMenu, got %v", m.phase)
	}
}

func TestBuildModelRejectsUnknownNames(t *testing.T) {
	if _, err := buildModel(missingConfig(t), "", "sawtooth"); !errors.Is(err, sampler.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := buildModel(missingConfig(t), "lissajous", ""); !errors.Is(err, ui.ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestRunReturnsErrorsInsteadOfExiting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_safe_frames: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"-config", path}); err == nil {
		t.Fatal("expected config parse error")
	}
	if err := run([]string{"-no-such-flag"}); err == nil {
		t.Fatal("expected flag error")
	}
}
