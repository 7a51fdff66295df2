package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/preview"
	"github.com/initializ/enroll/internal/tui/components"
	"github.com/initializ/enroll/internal/wizard"
)

// ErrAborted is returned by Err when the user quits before a successful
// submission.
var ErrAborted = errors.New("wizard cancelled")

var osUserHomeDir = os.UserHomeDir

// WizardModel is the top-level bubbletea model that draws a
// wizard.Controller and feeds it keyboard input.
type WizardModel struct {
	ctx     context.Context
	styles  *StyleSet
	theme   TermTheme
	ctrl    *wizard.Controller
	steps   []Step
	spinner spinner.Model
	bar     progress.Model
	width   int
	height  int
	done    bool
	err     error
	version string
	initial []*wizard.PreviewJob
}

// NewWizardModel creates a wizard over ctrl. steps must line up with the
// controller's step layout. Values already in the controller's form are
// copied into the steps.
func NewWizardModel(ctx context.Context, theme TermTheme, ctrl *wizard.Controller, steps []Step, version string) WizardModel {
	styles := NewStyleSet(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	w := WizardModel{
		ctx:     ctx,
		styles:  styles,
		theme:   theme,
		ctrl:    ctrl,
		steps:   steps,
		spinner: sp,
		bar:     progress.New(progress.WithGradient(string(theme.AccentDim), string(theme.Accent)), progress.WithoutPercentage()),
		width:   80,
		height:  24,
		version: version,
	}

	acc := ctrl.Form()
	for _, s := range steps {
		if p, ok := s.(interface{ Prefill(acc form.Accessor) }); ok {
			p.Prefill(acc)
		}
	}
	for _, field := range form.FileFields {
		if sel := acc.File(field); sel != nil {
			if job := ctrl.SelectFile(field, sel); job != nil {
				w.initial = append(w.initial, job)
			}
		}
	}
	w.refresh()
	return w
}

// Init focuses the current step and starts any pending preview decodes.
func (w WizardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{w.currentStep().Init()}
	for _, job := range w.initial {
		cmds = append(cmds, decodeCmd(job))
	}
	if len(w.initial) > 0 {
		cmds = append(cmds, w.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the wizard.
func (w WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			w.ctrl.Cancel()
			if !w.done {
				w.err = ErrAborted
			}
			return w, tea.Quit
		}
		if w.done {
			if msg.String() == "enter" || msg.String() == "q" {
				return w, tea.Quit
			}
			return w, nil
		}
		switch msg.String() {
		case "ctrl+n":
			return w, w.next()
		case "ctrl+b":
			return w, w.back()
		case "ctrl+s":
			if w.ctrl.State().SubmitVisible {
				return w, w.submit()
			}
			return w, nil
		}

	case StepCompleteMsg:
		if w.done {
			return w, nil
		}
		if w.ctrl.State().SubmitVisible {
			return w, w.submit()
		}
		return w, w.next()

	case StepBackMsg:
		return w, w.back()

	case FileChosenMsg:
		cmd := w.syncFiles()
		w.refresh()
		return w, cmd

	case PreviewDoneMsg:
		w.ctrl.CompletePreview(msg.Job, msg.Preview, msg.Err)
		w.refresh()
		return w, nil

	case SubmitDoneMsg:
		w.ctrl.CompleteSubmit(msg.Pending, msg.Err)
		if msg.Err == nil {
			w.done = true
			if b, ok := w.currentStep().(interface{ Blur() }); ok {
				b.Blur()
			}
		}
		w.refresh()
		return w, nil

	case spinner.TickMsg:
		if !w.busy() {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd
	}

	if w.done {
		return w, nil
	}
	updated, cmd := w.currentStep().Update(msg)
	w.steps[w.ctrl.Current()] = updated
	return w, cmd
}

// next validates the visible step and moves forward.
func (w *WizardModel) next() tea.Cmd {
	st := w.ctrl.State()
	if !st.NextVisible || st.NextDisabled {
		return nil
	}
	w.applyAll()
	fileCmd := w.syncFiles()

	from := w.ctrl.Current()
	ok := w.ctrl.Advance()
	w.refresh()
	if !ok {
		return tea.Batch(fileCmd, w.focusFirstError())
	}
	w.blurStep(from)
	return tea.Batch(fileCmd, w.currentStep().Init())
}

// back moves to the previous step without validating.
func (w *WizardModel) back() tea.Cmd {
	w.applyAll()
	from := w.ctrl.Current()
	if !w.ctrl.Retreat() {
		return nil
	}
	w.blurStep(from)
	w.refresh()
	return w.currentStep().Init()
}

// submit starts a submission in the background.
func (w *WizardModel) submit() tea.Cmd {
	w.applyAll()
	fileCmd := w.syncFiles()

	from := w.ctrl.Current()
	p, err := w.ctrl.BeginSubmit(w.ctx)
	w.refresh()
	if err != nil {
		if w.ctrl.Current() != from {
			w.blurStep(from)
			return tea.Batch(fileCmd, w.currentStep().Init(), w.focusFirstError())
		}
		return tea.Batch(fileCmd, w.focusFirstError())
	}

	send := func() tea.Msg {
		return SubmitDoneMsg{Pending: p, Err: p.Send()}
	}
	return tea.Batch(fileCmd, w.spinner.Tick, send)
}

// syncFiles hands every changed file path to the controller and returns
// the decode commands it asks for.
func (w *WizardModel) syncFiles() tea.Cmd {
	acc := w.ctrl.Form()
	var cmds []tea.Cmd
	for _, s := range w.steps {
		fs, ok := s.(FileStep)
		if !ok {
			continue
		}
		for field, path := range fs.FilePaths() {
			path = expandHome(path)
			cur := acc.File(field)
			if (cur == nil && path == "") || (cur != nil && cur.Path == path) {
				continue
			}
			if path == "" {
				w.ctrl.SelectFile(field, nil)
				continue
			}

			sel, err := preview.Inspect(path)
			if err != nil {
				w.ctrl.RejectFile(field, err)
				continue
			}
			if job := w.ctrl.SelectFile(field, sel); job != nil {
				cmds = append(cmds, decodeCmd(job), w.spinner.Tick)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (w *WizardModel) applyAll() {
	for _, s := range w.steps {
		s.Apply(w.ctrl.Form())
	}
}

func (w *WizardModel) refresh() {
	st := w.ctrl.State()
	for _, s := range w.steps {
		s.Refresh(w.ctrl.Form(), st.Files)
	}
}

func (w *WizardModel) focusFirstError() tea.Cmd {
	if f, ok := w.currentStep().(interface{ FocusFirstError() tea.Cmd }); ok {
		return f.FocusFirstError()
	}
	return nil
}

func (w *WizardModel) blurStep(i int) {
	if i < 0 || i >= len(w.steps) {
		return
	}
	if b, ok := w.steps[i].(interface{ Blur() }); ok {
		b.Blur()
	}
}

func (w WizardModel) currentStep() Step {
	return w.steps[w.ctrl.Current()]
}

func (w WizardModel) busy() bool {
	st := w.ctrl.State()
	if st.Submitting {
		return true
	}
	for _, fv := range st.Files {
		if fv.Decoding {
			return true
		}
	}
	return false
}

func decodeCmd(job *wizard.PreviewJob) tea.Cmd {
	return func() tea.Msg {
		p, err := job.Run()
		return PreviewDoneMsg{Job: job, Preview: p, Err: err}
	}
}

// View renders the entire wizard UI.
func (w WizardModel) View() string {
	st := w.ctrl.State()

	var out string
	out += "\n" + RenderBanner(w.styles, w.version, w.width)
	out += RenderProgress(w.steps, st, w.bar, w.styles, w.width)
	out += "\n"

	banner := components.NewStatusBanner(w.styles.Palette())
	banner.Kind = string(st.Banner.Type)
	banner.Message = st.Banner.Message
	if w.busy() {
		banner.Spinner = w.spinner.View()
	}

	if w.done {
		out += banner.View() + "\n"
		pal := w.styles.Palette()
		out += components.RenderSummary(pal, w.width, w.Rows()) + "\n\n"
		out += components.RenderHints(pal, w.width, components.DoneHints) + "\n"
		return out
	}

	out += w.currentStep().View(w.width)
	if b := banner.View(); b != "" {
		out += "\n" + b
	}
	return out
}

// Rows returns the submitted values of every step.
func (w WizardModel) Rows() []components.SummaryRow {
	var rows []components.SummaryRow
	for _, s := range w.steps {
		rows = append(rows, s.Rows()...)
	}
	return rows
}

// Err returns ErrAborted when the user quit early.
func (w WizardModel) Err() error {
	return w.err
}

// Done returns true once the registration was accepted.
func (w WizardModel) Done() bool {
	return w.done
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := osUserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
