package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TextArea is a multi-line entry wrapping bubbles/textarea. Enter inserts
// a newline rather than leaving the field.
type TextArea struct {
	name    string
	label   string
	input   textarea.Model
	err     string
	palette Palette
}

// NewTextArea creates a multi-line input for the named form field.
func NewTextArea(name, label, placeholder string, palette Palette) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 2000
	ta.SetHeight(4)
	ta.FocusedStyle.Placeholder = palette.Placeholder
	ta.BlurredStyle.Placeholder = palette.Placeholder
	ta.Blur()

	return &TextArea{
		name:    name,
		label:   label,
		input:   ta,
		palette: palette,
	}
}

func (t *TextArea) Name() string        { return t.name }
func (t *TextArea) Label() string       { return t.label }
func (t *TextArea) Value() string       { return t.input.Value() }
func (t *TextArea) SetValue(v string)   { t.input.SetValue(v) }
func (t *TextArea) SetError(msg string) { t.err = msg }
func (t *TextArea) Error() string       { return t.err }
func (t *TextArea) Focused() bool       { return t.input.Focused() }
func (t *TextArea) Blur()               { t.input.Blur() }
func (t *TextArea) Focus() tea.Cmd      { return t.input.Focus() }
func (t *TextArea) WantsEnter() bool    { return true }

// Display collapses the text onto one line.
func (t *TextArea) Display() string {
	return strings.Join(strings.Fields(t.input.Value()), " ")
}

// Update handles messages.
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the label, the text box and any error.
func (t *TextArea) View(width int) string {
	w := boxWidth(width)
	t.input.SetWidth(w - 4)

	out := "  " + t.palette.label(t.label, t.input.Focused()) + "\n"
	out += "  " + t.palette.border(t.input.Focused(), t.err).Width(w).Render(t.input.View()) + "\n"
	out += t.palette.errorLine(t.err)
	return out
}
