package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatusBanner renders the single typed status message under the form.
type StatusBanner struct {
	Kind    string // info, error or success
	Message string
	// Spinner is drawn before info messages while work is in flight.
	Spinner string

	InfoStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
}

// NewStatusBanner creates an empty banner with the palette's colors.
func NewStatusBanner(p Palette) StatusBanner {
	return StatusBanner{
		InfoStyle:    p.Info,
		ErrorStyle:   p.Error,
		SuccessStyle: p.Success,
	}
}

// View renders the banner, or nothing when there is no message.
func (b StatusBanner) View() string {
	if b.Message == "" {
		return ""
	}
	switch b.Kind {
	case "error":
		return "  " + b.ErrorStyle.Bold(true).Render("✗ "+b.Message) + "\n"
	case "success":
		return "  " + b.SuccessStyle.Bold(true).Render("✓ "+b.Message) + "\n"
	default:
		icon := "ℹ"
		if b.Spinner != "" {
			icon = b.Spinner
		}
		return "  " + icon + " " + b.InfoStyle.Render(b.Message) + "\n"
	}
}
