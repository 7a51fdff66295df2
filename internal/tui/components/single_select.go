package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/enroll/internal/form"
)

// SingleSelect is a compact dropdown replacement: one line showing the
// chosen option, cycled with the left and right keys. Index -1 is the
// empty placeholder choice.
type SingleSelect struct {
	name        string
	label       string
	placeholder string
	Items       []form.Option
	cursor      int
	focused     bool
	err         string
	palette     Palette
}

// NewSingleSelect creates a select over items with nothing chosen.
func NewSingleSelect(name, label, placeholder string, items []form.Option, palette Palette) *SingleSelect {
	return &SingleSelect{
		name:        name,
		label:       label,
		placeholder: placeholder,
		Items:       items,
		cursor:      -1,
		palette:     palette,
	}
}

func (s *SingleSelect) Name() string        { return s.name }
func (s *SingleSelect) Label() string       { return s.label }
func (s *SingleSelect) SetError(msg string) { s.err = msg }
func (s *SingleSelect) Error() string       { return s.err }
func (s *SingleSelect) Focused() bool       { return s.focused }
func (s *SingleSelect) Blur()               { s.focused = false }

// Focus marks the select as focused.
func (s *SingleSelect) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Value returns the chosen option value, or "" for the placeholder.
func (s *SingleSelect) Value() string {
	if s.cursor < 0 || s.cursor >= len(s.Items) {
		return ""
	}
	return s.Items[s.cursor].Value
}

// SetValue chooses the option with value v. Unknown values select the
// placeholder.
func (s *SingleSelect) SetValue(v string) {
	s.cursor = -1
	for i, it := range s.Items {
		if it.Value == v {
			s.cursor = i
			return
		}
	}
}

// Display returns the chosen option's label.
func (s *SingleSelect) Display() string {
	return form.LabelFor(s.Items, s.Value())
}

// Update cycles through the options.
func (s *SingleSelect) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !s.focused || len(s.Items) == 0 {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "right", "l", " ":
			s.cursor++
			if s.cursor >= len(s.Items) {
				s.cursor = 0
			}
		case "left", "h":
			s.cursor--
			if s.cursor < 0 {
				s.cursor = len(s.Items) - 1
			}
		}
	}
	return s, nil
}

// View renders the chosen option between cycle arrows.
func (s *SingleSelect) View(width int) string {
	w := boxWidth(width)

	text := s.palette.Placeholder.Render(s.placeholder)
	if s.Value() != "" {
		text = s.palette.Value.Render(s.Display())
	}
	arrows := s.palette.Hint
	if s.focused {
		arrows = s.palette.Label.Foreground(s.palette.Accent)
	}
	line := arrows.Render("◂ ") + text
	pad := w - 4 - lipgloss.Width(line) - 2
	if pad < 1 {
		pad = 1
	}
	line += lipgloss.NewStyle().Width(pad).Render("") + arrows.Render(" ▸")

	out := "  " + s.palette.label(s.label, s.focused) + "\n"
	out += "  " + s.palette.border(s.focused, s.err).Width(w).Render(line) + "\n"
	out += s.palette.errorLine(s.err)
	return out
}
