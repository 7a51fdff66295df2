package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/tui/components"
	"github.com/initializ/enroll/internal/wizard"
)

// Step is the interface that all wizard steps must implement.
type Step interface {
	// Title returns the step's display title.
	Title() string
	// Icon returns the step's icon/emoji.
	Icon() string
	// Init returns the initial command for this step.
	Init() tea.Cmd
	// Update handles messages and returns the updated step and command.
	Update(msg tea.Msg) (Step, tea.Cmd)
	// View renders the step content.
	View(width int) string
	// Summary returns a one-line summary for the collapsed view.
	Summary() string
	// Rows returns the step's values for the submitted summary.
	Rows() []components.SummaryRow
	// Apply writes the step's values to the form.
	Apply(acc form.Accessor)
	// Refresh pulls field errors and file status back from the form.
	Refresh(acc form.Accessor, files map[string]wizard.FileView)
}

// FileStep is implemented by steps that hold file fields.
type FileStep interface {
	// FilePaths returns the typed path of every file field.
	FilePaths() map[string]string
}

// RenderProgress renders the step list with badges, then the progress bar
// and step counter.
func RenderProgress(steps []Step, st wizard.State, bar progress.Model, styles *StyleSet, width int) string {
	var out string

	for i, s := range steps {
		var status wizard.StepStatus
		if i < len(st.Steps) {
			status = st.Steps[i].Status
		}

		switch status {
		case wizard.StepCompleted:
			badge := styles.StepBadgeComplete.Render("✓")
			title := styles.PrimaryTxt.Bold(true).Render(s.Title())
			out += fmt.Sprintf("  %s  %s", badge, title)
			if sum := s.Summary(); sum != "" {
				out += "  " + styles.SecondaryTxt.Render(sum)
			}
			out += "\n"
		case wizard.StepActive:
			numStr := fmt.Sprintf("%d", i+1)
			badge := styles.StepBadgeActive.Render(numStr)
			title := styles.AccentTxt.Bold(true).Render(s.Icon() + " " + s.Title())
			dividerLen := width - 14 - lipgloss.Width(numStr) - lipgloss.Width(s.Title())
			if dividerLen < 2 {
				dividerLen = 2
			}
			if dividerLen > 40 {
				dividerLen = 40
			}
			divider := styles.DimTxt.Render(" " + strings.Repeat("─", dividerLen))
			out += fmt.Sprintf("  %s  %s%s\n", badge, title, divider)
		default:
			badge := styles.StepBadgePending.Render(fmt.Sprintf("%d", i+1))
			out += fmt.Sprintf("  %s  %s\n", badge, styles.DimTxt.Render(s.Title()))
		}
	}

	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 48 {
		barWidth = 48
	}
	bar.Width = barWidth
	out += "\n  " + bar.ViewAs(st.Progress) + "  " + styles.SecondaryTxt.Render(st.Counter) + "\n"
	return out
}
