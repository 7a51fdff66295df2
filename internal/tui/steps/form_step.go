// Package steps holds the three screens of the registration wizard.
package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/tui"
	"github.com/initializ/enroll/internal/tui/components"
	"github.com/initializ/enroll/internal/wizard"
)

// FormStep is a column of fields with one of them focused.
type FormStep struct {
	title   string
	icon    string
	fields  []components.Field
	focus   int
	summary []string
	hints   []components.Hint
	pal     components.Palette
}

func newFormStep(styles *tui.StyleSet, title, icon string, final bool, summary []string, fields ...components.Field) *FormStep {
	hints := components.FormHints
	if final {
		hints = components.FinalStepHints
	}
	return &FormStep{
		title:   title,
		icon:    icon,
		fields:  fields,
		summary: summary,
		hints:   hints,
		pal:     styles.Palette(),
	}
}

func (s *FormStep) Title() string { return s.title }
func (s *FormStep) Icon() string  { return s.icon }

// Init focuses the remembered field.
func (s *FormStep) Init() tea.Cmd {
	if len(s.fields) == 0 {
		return nil
	}
	return s.fields[s.focus].Focus()
}

// Update moves focus on tab and arrows, completes the step on enter at
// the last field and passes everything else to the focused field.
func (s *FormStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if len(s.fields) == 0 {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		cur := s.fields[s.focus]
		switch msg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			if w, ok := cur.(interface{ WantsEnter() bool }); ok && w.WantsEnter() {
				break
			}
			if s.focus == len(s.fields)-1 {
				return s, tea.Batch(s.leaving(cur), func() tea.Msg { return tui.StepCompleteMsg{} })
			}
			return s, s.moveFocus(1)
		}
	}

	updated, cmd := s.fields[s.focus].Update(msg)
	s.fields[s.focus] = updated
	return s, cmd
}

func (s *FormStep) moveFocus(delta int) tea.Cmd {
	cur := s.fields[s.focus]
	cur.Blur()
	leave := s.leaving(cur)

	s.focus = (s.focus + delta + len(s.fields)) % len(s.fields)
	return tea.Batch(leave, s.fields[s.focus].Focus())
}

// leaving reports a file choice when focus leaves a file field.
func (s *FormStep) leaving(f components.Field) tea.Cmd {
	if _, ok := f.(*components.FileInput); !ok {
		return nil
	}
	name, path := f.Name(), f.Value()
	return func() tea.Msg { return tui.FileChosenMsg{Field: name, Path: path} }
}

// FocusFirstError moves focus to the first field showing an error.
func (s *FormStep) FocusFirstError() tea.Cmd {
	for i, f := range s.fields {
		if f.Error() == "" {
			continue
		}
		if i == s.focus {
			return nil
		}
		s.fields[s.focus].Blur()
		s.focus = i
		return f.Focus()
	}
	return nil
}

// Blur unfocuses the current field.
func (s *FormStep) Blur() {
	if len(s.fields) > 0 {
		s.fields[s.focus].Blur()
	}
}

// View renders every field followed by the key hints.
func (s *FormStep) View(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, f := range s.fields {
		b.WriteString(f.View(width))
		b.WriteString("\n")
	}
	b.WriteString(components.RenderHints(s.pal, width, s.hints))
	b.WriteString("\n")
	return b.String()
}

// Summary joins the display values of the summary fields.
func (s *FormStep) Summary() string {
	var parts []string
	for _, name := range s.summary {
		if f := s.field(name); f != nil && f.Display() != "" {
			parts = append(parts, f.Display())
		}
	}
	return strings.Join(parts, " · ")
}

// Rows lists every field for the submitted summary.
func (s *FormStep) Rows() []components.SummaryRow {
	rows := make([]components.SummaryRow, 0, len(s.fields))
	for _, f := range s.fields {
		rows = append(rows, components.SummaryRow{Section: s.title, Key: f.Label(), Value: f.Display()})
	}
	return rows
}

// Apply writes every non-file field to the form. File fields go through
// the controller so their previews stay in sync.
func (s *FormStep) Apply(acc form.Accessor) {
	for _, f := range s.fields {
		if form.IsFileField(f.Name()) {
			continue
		}
		acc.SetValue(f.Name(), f.Value())
	}
}

// Refresh copies errors and file status from the form.
func (s *FormStep) Refresh(acc form.Accessor, files map[string]wizard.FileView) {
	for _, f := range s.fields {
		f.SetError(acc.Error(f.Name()))
		if fi, ok := f.(*components.FileInput); ok {
			fv := files[f.Name()]
			fi.SetStatus(fv.Info, fv.Preview, fv.Decoding)
		}
	}
}

// FilePaths returns the typed path of each file field.
func (s *FormStep) FilePaths() map[string]string {
	out := map[string]string{}
	for _, f := range s.fields {
		if _, ok := f.(*components.FileInput); ok {
			out[f.Name()] = f.Value()
		}
	}
	return out
}

// Prefill copies values from acc into the fields.
func (s *FormStep) Prefill(acc form.Accessor) {
	for _, f := range s.fields {
		if form.IsFileField(f.Name()) {
			if sel := acc.File(f.Name()); sel != nil {
				f.SetValue(sel.Path)
			}
			continue
		}
		if v := acc.Value(f.Name()); v != "" {
			f.SetValue(v)
		}
	}
}

func (s *FormStep) field(name string) components.Field {
	for _, f := range s.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
