package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint pairs a key with what it does.
type Hint struct {
	Key    string
	Action string
}

var (
	// FormHints are shown on every step but the last.
	FormHints = []Hint{{"tab", "next field"}, {"⇧tab", "prev field"}, {"ctrl+n", "next step"}, {"ctrl+b", "back"}, {"esc", "quit"}}
	// FinalStepHints replace ctrl+n with ctrl+s on the last step.
	FinalStepHints = []Hint{{"tab", "next field"}, {"⇧tab", "prev field"}, {"ctrl+s", "submit"}, {"ctrl+b", "back"}, {"esc", "quit"}}
	// DoneHints are shown under the submitted summary.
	DoneHints = []Hint{{"⏎", "exit"}}
)

// RenderHints lays hints out on as few lines as fit in width.
func RenderHints(p Palette, width int, hints []Hint) string {
	const gap = "   "
	var lines []string
	line := ""
	for _, h := range hints {
		part := p.KbdKey.Render(h.Key) + " " + p.KbdDesc.Render(h.Action)
		if line != "" && lipgloss.Width(line+gap+part)+2 > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += gap
		}
		line += part
	}
	if line != "" {
		lines = append(lines, line)
	}
	return "  " + strings.Join(lines, "\n  ")
}
