package tui

import (
	"github.com/initializ/enroll/internal/preview"
	"github.com/initializ/enroll/internal/wizard"
)

// StepBackMsg is emitted by a step when the user asks for the previous step.
type StepBackMsg struct{}

// StepCompleteMsg is emitted by a step when enter is pressed on its last
// field.
type StepCompleteMsg struct{}

// FileChosenMsg is emitted when focus leaves a file field whose path
// changed.
type FileChosenMsg struct {
	Field string
	Path  string
}

// PreviewDoneMsg carries the result of a background image decode.
type PreviewDoneMsg struct {
	Job     *wizard.PreviewJob
	Preview *preview.Preview
	Err     error
}

// SubmitDoneMsg carries the outcome of a background submission.
type SubmitDoneMsg struct {
	Pending *wizard.Pending
	Err     error
}
