package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one labelled raw input. The raw text is kept exactly as typed;
// screens resolve it on every pass.
type field struct {
	key   string
	label string
	input textinput.Model
}

// form is an ordered set of fields with a single focused input. Fields can
// be hidden; hidden fields keep their values but are skipped by focus.
type form struct {
	fields  []field
	hidden  map[string]bool
	focused int
}

type fieldSpec struct {
	key, label, value string
}

func newForm(specs ...fieldSpec) form {
	f := form{hidden: make(map[string]bool)}
	for _, s := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 16
		ti.SetValue(s.value)
		f.fields = append(f.fields, field{key: s.key, label: s.label, input: ti})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) index(key string) int {
	for i := range f.fields {
		if f.fields[i].key == key {
			return i
		}
	}
	return -1
}

// Value returns the raw text of key.
func (f form) Value(key string) string {
	if i := f.index(key); i >= 0 {
		return f.fields[i].input.Value()
	}
	return ""
}

// SetValue replaces the raw text of key.
func (f *form) SetValue(key, v string) {
	if i := f.index(key); i >= 0 {
		f.fields[i].input.SetValue(v)
	}
}

// Focused returns the key of the focused field.
func (f form) Focused() string {
	if f.focused < 0 || f.focused >= len(f.fields) {
		return ""
	}
	return f.fields[f.focused].key
}

// SetHidden shows exactly the fields not in keys. If the focused field
// becomes hidden, focus moves to the next visible one.
func (f *form) SetHidden(keys ...string) {
	f.hidden = make(map[string]bool, len(keys))
	for _, k := range keys {
		f.hidden[k] = true
	}
	if f.hidden[f.Focused()] {
		f.move(1)
	}
}

// move shifts focus by dir over visible fields, wrapping around.
func (f *form) move(dir int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	f.fields[f.focused].input.Blur()
	i := f.focused
	for range n {
		i = (i + dir + n) % n
		if !f.hidden[f.fields[i].key] {
			break
		}
	}
	f.focused = i
	f.fields[i].input.Focus()
}

// Update routes focus keys and forwards the rest to the focused input. It
// reports the key of the field whose text changed, or "".
func (f *form) Update(msg tea.Msg) (tea.Cmd, string) {
	if len(f.fields) == 0 {
		return nil, ""
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up":
			f.move(-1)
			return textinput.Blink, ""
		case "down", "enter":
			f.move(1)
			return textinput.Blink, ""
		}
	}
	cur := &f.fields[f.focused]
	before := cur.input.Value()
	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	if cur.input.Value() != before {
		return cmd, cur.key
	}
	return cmd, ""
}

// View renders visible fields, one per line, with the resolved value from
// show next to the raw input.
func (f form) View(show func(key string) string) string {
	var b strings.Builder
	for i, fl := range f.fields {
		if f.hidden[fl.key] {
			continue
		}
		label := labelStyle.Render(fl.label)
		if i == f.focused {
			label = focusedLabelStyle.Render(fl.label)
		}
		b.WriteString("  ")
		b.WriteString(label)
		b.WriteString(fl.input.View())
		if show != nil {
			if s := show(fl.key); s != "" {
				b.WriteString("  ")
				b.WriteString(valueStyle.Render("→ " + s))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
