package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one submitted value. Rows sharing a Section are listed
// under one heading.
type SummaryRow struct {
	Section string
	Key     string
	Value   string
}

// RenderSummary draws rows in a bordered box, keys aligned to the
// longest one. Empty values render as "not set".
func RenderSummary(p Palette, width int, rows []SummaryRow) string {
	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(r.Key))
	}

	var b strings.Builder
	section := ""
	for i, r := range rows {
		if r.Section != section {
			if i > 0 {
				b.WriteByte('\n')
			}
			section = r.Section
			b.WriteString(p.FocusedLabel.Render(section) + "\n")
		}
		val := p.SummaryValue.Render(r.Value)
		if strings.TrimSpace(r.Value) == "" {
			val = p.Placeholder.Render("not set")
		}
		b.WriteString(p.SummaryKey.Width(keyWidth+2).Render(r.Key) + val + "\n")
	}

	return "  " + p.Box.Width(boxWidth(width)).Render(strings.TrimSuffix(b.String(), "\n"))
}
