package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of styles the components draw with.
type Palette struct {
	Accent         lipgloss.Color
	Label          lipgloss.Style
	FocusedLabel   lipgloss.Style
	Value          lipgloss.Style
	Placeholder    lipgloss.Style
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	ErrorBorder    lipgloss.Style
	Error          lipgloss.Style
	Hint           lipgloss.Style
	Success        lipgloss.Style
	Info           lipgloss.Style
	KbdKey         lipgloss.Style
	KbdDesc        lipgloss.Style
	SummaryKey     lipgloss.Style
	SummaryValue   lipgloss.Style
	Box            lipgloss.Style
}

// Field is one focusable control of a form step.
type Field interface {
	// Name is the form field the control edits.
	Name() string
	// Label is the human-readable field name.
	Label() string
	// Value is the raw value as the form stores it.
	Value() string
	SetValue(v string)
	// Display is the value as shown in the submitted summary.
	Display() string
	SetError(msg string)
	Error() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) (Field, tea.Cmd)
	View(width int) string
}

// border picks the box style for a field.
func (p Palette) border(focused bool, err string) lipgloss.Style {
	switch {
	case err != "":
		return p.ErrorBorder
	case focused:
		return p.ActiveBorder
	default:
		return p.InactiveBorder
	}
}

func (p Palette) label(text string, focused bool) string {
	if focused {
		return p.FocusedLabel.Render(text)
	}
	return p.Label.Render(text)
}

func (p Palette) errorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return "  " + p.Error.Render("✗ "+msg) + "\n"
}

func boxWidth(width int) int {
	w := width - 8
	if w < 20 {
		w = 20
	}
	if w > 64 {
		w = 64
	}
	return w
}
