package wizard

import (
	"fmt"

	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/preview"
)

// BannerType classifies a status banner.
type BannerType string

const (
	BannerInfo    BannerType = "info"
	BannerError   BannerType = "error"
	BannerSuccess BannerType = "success"
)

// Banner is the single status message shown under the form. A zero
// Banner is hidden.
type Banner struct {
	Type    BannerType
	Message string
}

// Visible reports whether the banner has anything to show.
func (b Banner) Visible() bool { return b.Message != "" }

// StepStatus is the progress indicator state of one step.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepCompleted
)

func (s StepStatus) String() string {
	switch s {
	case StepActive:
		return "active"
	case StepCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// StepView describes one step's progress indicator.
type StepView struct {
	Index  int
	Title  string
	Status StepStatus
}

// FileView is what a file input shows beside the picker.
type FileView struct {
	Info     string
	Preview  *preview.Preview
	Decoding bool
}

// State is everything a front end needs to draw the wizard chrome. It is
// derived from the controller on demand and never stored.
type State struct {
	Current        int
	Steps          []StepView
	Progress       float64
	Counter        string
	PrevDisabled   bool
	NextVisible    bool
	NextDisabled   bool
	SubmitVisible  bool
	SubmitDisabled bool
	SubmitLabel    string
	Submitting     bool
	Banner         Banner
	Files          map[string]FileView
}

// View receives a fresh State whenever the wizard changes.
type View interface {
	Render(State)
}

// ViewFunc adapts a function to View.
type ViewFunc func(State)

func (f ViewFunc) Render(s State) { f(s) }

type nopView struct{}

func (nopView) Render(State) {}

const (
	submitLabel     = "Submit"
	submittingLabel = "Submitting..."
)

// State derives the current view state.
func (c *Controller) State() State {
	n := len(c.steps)
	last := n - 1

	st := State{
		Current:      c.current,
		Steps:        make([]StepView, n),
		Counter:      fmt.Sprintf("Step %d of %d", c.current+1, n),
		PrevDisabled: c.current == 0,
		Submitting:   c.submitting,
		Banner:       c.banner,
		SubmitLabel:  submitLabel,
		Files:        make(map[string]FileView, len(c.files)),
	}
	if last > 0 {
		st.Progress = float64(c.current) / float64(last)
	} else {
		st.Progress = 1
	}
	st.NextVisible = c.current != last
	st.SubmitVisible = c.current == last
	if c.submitting {
		st.NextDisabled = true
		st.SubmitDisabled = true
		st.SubmitLabel = submittingLabel
	}

	for i, s := range c.steps {
		status := StepPending
		switch {
		case i < c.current:
			status = StepCompleted
		case i == c.current:
			status = StepActive
		}
		st.Steps[i] = StepView{Index: i, Title: s.Title, Status: status}
	}

	for _, field := range form.FileFields {
		fv, ok := c.files[field]
		if !ok {
			fv = FileView{Info: preview.NoFileText}
		}
		st.Files[field] = fv
	}
	return st
}

func (c *Controller) render() {
	c.view.Render(c.State())
}
