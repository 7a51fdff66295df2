package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBanner draws the title line, a one-line tagline and a rule sized
// to the terminal.
func RenderBanner(styles *StyleSet, version string, width int) string {
	if version == "" {
		version = "dev"
	}
	rule := strings.Repeat("─", min(max(width-4, 20), 60))

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.Banner.Render("✎  E N R O L L")+"  "+styles.VersionPill.Render("v"+version),
		styles.Subtitle.Render("Create your account in three short steps."),
		styles.DimTxt.Render(rule),
	)
	return lipgloss.NewStyle().PaddingLeft(2).Render(header) + "\n\n"
}
