package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/enroll/internal/preview"
)

// FileInput is a path entry with the picker's info line and, for images,
// a preview line underneath.
type FileInput struct {
	name     string
	label    string
	input    textinput.Model
	err      string
	info     string
	preview  *preview.Preview
	decoding bool
	palette  Palette
}

// NewFileInput creates a file path input for the named form field.
func NewFileInput(name, label, accept string, palette Palette) *FileInput {
	ti := textinput.New()
	ti.Placeholder = "path/to/file (" + accept + ")"
	ti.CharLimit = 4096
	ti.Prompt = ""
	ti.Cursor.Style = palette.Value.Foreground(palette.Accent)
	ti.PlaceholderStyle = palette.Placeholder

	return &FileInput{
		name:    name,
		label:   label,
		input:   ti,
		info:    preview.NoFileText,
		palette: palette,
	}
}

func (f *FileInput) Name() string        { return f.name }
func (f *FileInput) Label() string       { return f.label }
func (f *FileInput) SetValue(v string)   { f.input.SetValue(v) }
func (f *FileInput) SetError(msg string) { f.err = msg }
func (f *FileInput) Error() string       { return f.err }
func (f *FileInput) Focused() bool       { return f.input.Focused() }
func (f *FileInput) Blur()               { f.input.Blur() }
func (f *FileInput) Focus() tea.Cmd      { return f.input.Focus() }

// Value returns the typed path with surrounding blanks and quotes removed,
// so paths dragged into a terminal work as typed.
func (f *FileInput) Value() string {
	v := strings.TrimSpace(f.input.Value())
	return strings.Trim(v, `"'`)
}

// Display returns the info line, or nothing when no file is chosen.
func (f *FileInput) Display() string {
	if f.info == preview.NoFileText {
		return ""
	}
	return f.info
}

// SetStatus updates the info and preview lines.
func (f *FileInput) SetStatus(info string, p *preview.Preview, decoding bool) {
	f.info = info
	f.preview = p
	f.decoding = decoding
}

// Update handles messages.
func (f *FileInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the path box, the info line and the preview line.
func (f *FileInput) View(width int) string {
	out := renderInput(f.palette, f.label, &f.input, f.err, width)
	out += "    " + f.palette.Hint.Render(f.info) + "\n"

	switch {
	case f.decoding:
		out += "    " + f.palette.Info.Render("⋯ decoding preview") + "\n"
	case f.preview != nil:
		text := f.preview.Text
		if f.preview.Width > 0 {
			text += fmt.Sprintf(" %d×%d px", f.preview.Width, f.preview.Height)
		}
		out += "    " + f.palette.Success.Render("▣ "+text) + "\n"
	}
	return out
}
