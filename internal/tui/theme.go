package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/enroll/internal/tui/components"
)

// TermTheme is the color palette the wizard is drawn with.
type TermTheme struct {
	Name string

	Accent    lipgloss.Color
	AccentDim lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	Text   lipgloss.Color
	Muted  lipgloss.Color
	Faint  lipgloss.Color
	Border lipgloss.Color
	// OnAccent is the text color drawn over filled badges.
	OnAccent lipgloss.Color
}

// DarkTheme is used unless a light background is detected.
var DarkTheme = TermTheme{
	Name:      "dark",
	Accent:    "#38bdf8",
	AccentDim: "#0284c7",
	Success:   "#22c55e",
	Error:     "#ef4444",
	Info:      "#60a5fa",
	Text:      "#e2e8f0",
	Muted:     "#94a3b8",
	Faint:     "#526075",
	Border:    "#273449",
	OnAccent:  "#ffffff",
}

// LightTheme suits terminals with a light background.
var LightTheme = TermTheme{
	Name:      "light",
	Accent:    "#0369a1",
	AccentDim: "#0c4a6e",
	Success:   "#15803d",
	Error:     "#b91c1c",
	Info:      "#1d4ed8",
	Text:      "#0f172a",
	Muted:     "#374151",
	Faint:     "#6b7280",
	Border:    "#d1d5db",
	OnAccent:  "#ffffff",
}

// DetectTheme resolves the theme from, in order: the --theme value,
// ENROLL_THEME and the COLORFGBG background hint. "auto" or an empty
// value falls through to the next source.
func DetectTheme(flagVal string) TermTheme {
	for _, name := range []string{flagVal, os.Getenv("ENROLL_THEME")} {
		if t, ok := namedTheme(name); ok {
			return t
		}
	}
	if lightBackground(os.Getenv("COLORFGBG")) {
		return LightTheme
	}
	return DarkTheme
}

func namedTheme(name string) (TermTheme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return DarkTheme, true
	case "light":
		return LightTheme, true
	}
	return TermTheme{}, false
}

// lightBackground reads a "fg;bg" COLORFGBG value. Background colors 7
// and 15 are white.
func lightBackground(colorfgbg string) bool {
	i := strings.LastIndex(colorfgbg, ";")
	if i < 0 {
		return false
	}
	bg := colorfgbg[i+1:]
	return bg == "7" || bg == "15"
}

// StyleSet is the set of lipgloss styles built once per theme.
type StyleSet struct {
	Theme TermTheme

	Subtitle     lipgloss.Style
	AccentTxt    lipgloss.Style
	DimTxt       lipgloss.Style
	SuccessTxt   lipgloss.Style
	ErrorTxt     lipgloss.Style
	InfoTxt      lipgloss.Style
	PrimaryTxt   lipgloss.Style
	SecondaryTxt lipgloss.Style

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	ErrorBorder    lipgloss.Style
	BorderedBox    lipgloss.Style

	KbdKey       lipgloss.Style
	KbdDesc      lipgloss.Style
	Banner       lipgloss.Style
	VersionPill  lipgloss.Style
	SummaryKey   lipgloss.Style
	SummaryValue lipgloss.Style

	StepBadgeComplete lipgloss.Style
	StepBadgeActive   lipgloss.Style
	StepBadgePending  lipgloss.Style
}

// NewStyleSet derives every style from theme.
func NewStyleSet(theme TermTheme) *StyleSet {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	box := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(0, 1)
	}
	badge := func(bg, text lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(bg).Foreground(text).Padding(0, 1)
	}

	return &StyleSet{
		Theme: theme,

		Subtitle:     fg(theme.Muted),
		AccentTxt:    fg(theme.Accent),
		DimTxt:       fg(theme.Faint),
		SuccessTxt:   fg(theme.Success),
		ErrorTxt:     fg(theme.Error),
		InfoTxt:      fg(theme.Info),
		PrimaryTxt:   fg(theme.Text),
		SecondaryTxt: fg(theme.Muted),

		ActiveBorder:   box(theme.Accent),
		InactiveBorder: box(theme.Border),
		ErrorBorder:    box(theme.Error),
		BorderedBox:    box(theme.Border),

		KbdKey:       badge(theme.Faint, theme.Text),
		KbdDesc:      fg(theme.Faint),
		Banner:       fg(theme.Accent).Bold(true),
		VersionPill:  badge(theme.Accent, theme.OnAccent).Bold(true),
		SummaryKey:   fg(theme.Muted),
		SummaryValue: fg(theme.Text).Bold(true),

		StepBadgeComplete: badge(theme.Success, theme.OnAccent).Bold(true),
		StepBadgeActive:   badge(theme.Accent, theme.OnAccent).Bold(true),
		StepBadgePending:  badge(theme.Border, theme.Muted),
	}
}

// Palette returns the styles the form components draw with.
func (s *StyleSet) Palette() components.Palette {
	return components.Palette{
		Accent:         s.Theme.Accent,
		Label:          s.SecondaryTxt,
		FocusedLabel:   s.AccentTxt.Bold(true),
		Value:          s.PrimaryTxt,
		Placeholder:    s.DimTxt,
		ActiveBorder:   s.ActiveBorder,
		InactiveBorder: s.InactiveBorder,
		ErrorBorder:    s.ErrorBorder,
		Error:          s.ErrorTxt,
		Hint:           s.DimTxt,
		Success:        s.SuccessTxt,
		Info:           s.InfoTxt,
		KbdKey:         s.KbdKey,
		KbdDesc:        s.KbdDesc,
		SummaryKey:     s.SummaryKey,
		SummaryValue:   s.SummaryValue,
		Box:            s.BorderedBox,
	}
}
