package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testForm() form {
	return newForm(
		fieldSpec{"a", "A", "1"},
		fieldSpec{"b", "B", "2"},
		fieldSpec{"c", "C", "3"},
	)
}

func TestFormFocusSkipsHiddenFields(t *testing.T) {
	f := testForm()
	f.SetHidden("b")

	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	if f.Focused() != "c" {
		t.Fatalf("expected c focused, got %q", f.Focused())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	if f.Focused() != "a" {
		t.Fatalf("expected focus to wrap to a, got %q", f.Focused())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	if f.Focused() != "c" {
		t.Fatalf("expected c focused, got %q", f.Focused())
	}
}

func TestFormHidingFocusedFieldMovesFocus(t *testing.T) {
	f := testForm()
	f.SetHidden("a")
	if f.Focused() != "b" {
		t.Fatalf("expected b focused, got %q", f.Focused())
	}
	if f.Value("a") != "1" {
		t.Fatalf("expected hidden field to keep its value, got %q", f.Value("a"))
	}
}

func TestFormUpdateReportsChangedField(t *testing.T) {
	f := testForm()
	_, changed := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	if changed != "a" || f.Value("a") != "15" {
		t.Fatalf("expected a=15 changed, got %q %q", changed, f.Value("a"))
	}
	_, changed = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if changed != "" {
		t.Fatalf("expected no change for cursor movement, got %q", changed)
	}
}

func TestFormViewOmitsHiddenFields(t *testing.T) {
	f := testForm()
	f.SetHidden("b")
	view := f.View(func(key string) string { return "r" + key })
	if strings.Contains(view, "B") || strings.Contains(view, "rb") {
		t.Fatalf("expected hidden field omitted, got %q", view)
	}
	if !strings.Contains(view, "→ ra") {
		t.Fatalf("expected resolved value for a, got %q", view)
	}
}
