package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SecretInput is a masked text entry. Its value is never trimmed and
// never shown in summaries.
type SecretInput struct {
	name    string
	label   string
	input   textinput.Model
	err     string
	palette Palette
}

// NewSecretInput creates a masked input for the named form field.
func NewSecretInput(name, label string, palette Palette) *SecretInput {
	ti := textinput.New()
	ti.Placeholder = "••••••••"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 128
	ti.Prompt = ""
	ti.Cursor.Style = palette.Value.Foreground(palette.Accent)
	ti.PlaceholderStyle = palette.Placeholder

	return &SecretInput{
		name:    name,
		label:   label,
		input:   ti,
		palette: palette,
	}
}

func (s *SecretInput) Name() string        { return s.name }
func (s *SecretInput) Label() string       { return s.label }
func (s *SecretInput) Value() string       { return s.input.Value() }
func (s *SecretInput) SetValue(v string)   { s.input.SetValue(v) }
func (s *SecretInput) SetError(msg string) { s.err = msg }
func (s *SecretInput) Error() string       { return s.err }
func (s *SecretInput) Focused() bool       { return s.input.Focused() }
func (s *SecretInput) Blur()               { s.input.Blur() }
func (s *SecretInput) Focus() tea.Cmd      { return s.input.Focus() }

// Display masks the value.
func (s *SecretInput) Display() string {
	if s.input.Value() == "" {
		return ""
	}
	return strings.Repeat("•", 8)
}

// Update handles messages.
func (s *SecretInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the masked input.
func (s *SecretInput) View(width int) string {
	return renderInput(s.palette, s.label, &s.input, s.err, width)
}
