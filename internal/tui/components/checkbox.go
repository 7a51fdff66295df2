package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/enroll/internal/form"
)

// Checkbox is a single toggle. Its form value is "on" when checked and
// empty otherwise.
type Checkbox struct {
	name    string
	label   string
	checked bool
	focused bool
	err     string
	palette Palette
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(name, label string, palette Palette) *Checkbox {
	return &Checkbox{name: name, label: label, palette: palette}
}

func (c *Checkbox) Name() string        { return c.name }
func (c *Checkbox) Label() string       { return c.label }
func (c *Checkbox) SetError(msg string) { c.err = msg }
func (c *Checkbox) Error() string       { return c.err }
func (c *Checkbox) Focused() bool       { return c.focused }
func (c *Checkbox) Blur()               { c.focused = false }
func (c *Checkbox) Checked() bool       { return c.checked }

// Focus marks the checkbox as focused.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Value returns "on" when checked.
func (c *Checkbox) Value() string {
	if c.checked {
		return form.Checked
	}
	return ""
}

// SetValue checks the box for any non-empty value.
func (c *Checkbox) SetValue(v string) { c.checked = v != "" }

// Display returns Yes or No.
func (c *Checkbox) Display() string {
	if c.checked {
		return "Yes"
	}
	return "No"
}

// Update toggles on space or x.
func (c *Checkbox) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case " ", "x":
			c.checked = !c.checked
		}
	}
	return c, nil
}

// View renders the box and its label.
func (c *Checkbox) View(width int) string {
	box := c.palette.Hint.Render("[ ]")
	if c.checked {
		box = lipgloss.NewStyle().Foreground(c.palette.Accent).Bold(true).Render("[✓]")
	}
	out := "  " + box + " " + c.palette.label(c.label, c.focused) + "\n"
	out += c.palette.errorLine(c.err)
	return out
}
