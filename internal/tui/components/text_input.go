package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextInput is a styled text entry component wrapping bubbles/textinput.
type TextInput struct {
	name    string
	label   string
	input   textinput.Model
	err     string
	palette Palette
}

// NewTextInput creates a text input for the named form field.
func NewTextInput(name, label, placeholder string, palette Palette) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Prompt = ""
	ti.Cursor.Style = palette.Value.Foreground(palette.Accent)
	ti.PlaceholderStyle = palette.Placeholder

	return &TextInput{
		name:    name,
		label:   label,
		input:   ti,
		palette: palette,
	}
}

func (t *TextInput) Name() string        { return t.name }
func (t *TextInput) Label() string       { return t.label }
func (t *TextInput) Value() string       { return t.input.Value() }
func (t *TextInput) SetValue(v string)   { t.input.SetValue(v) }
func (t *TextInput) Display() string     { return strings.TrimSpace(t.input.Value()) }
func (t *TextInput) SetError(msg string) { t.err = msg }
func (t *TextInput) Error() string       { return t.err }
func (t *TextInput) Focused() bool       { return t.input.Focused() }
func (t *TextInput) Blur()               { t.input.Blur() }

// Focus focuses the input and starts the cursor blinking.
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Update handles messages. Errors stay until the next validation.
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the label, the input box and any error.
func (t *TextInput) View(width int) string {
	return renderInput(t.palette, t.label, &t.input, t.err, width)
}

func renderInput(p Palette, label string, input *textinput.Model, err string, width int) string {
	w := boxWidth(width)
	input.Width = w - 4

	out := "  " + p.label(label, input.Focused()) + "\n"
	out += "  " + p.border(input.Focused(), err).Width(w).Render(input.View()) + "\n"
	out += p.errorLine(err)
	return out
}
