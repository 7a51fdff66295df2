package steps

import (
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/tui"
	"github.com/initializ/enroll/internal/tui/components"
)

// NewDocumentsStep builds the documents screen. It is the final step.
func NewDocumentsStep(styles *tui.StyleSet) *FormStep {
	p := styles.Palette()
	return newFormStep(styles, "Documents", "📎", true,
		[]string{form.ProfilePicture, form.Resume},
		components.NewFileInput(form.ProfilePicture, form.Labels[form.ProfilePicture], "jpg, png, webp · max 2 MB", p),
		components.NewFileInput(form.Resume, form.Labels[form.Resume], "pdf · max 3 MB", p),
		components.NewTextArea(form.Bio, form.Labels[form.Bio], "At least 30 characters about yourself", p),
	)
}

// All builds the three steps in order.
func All(styles *tui.StyleSet, countries, questions []form.Option) []tui.Step {
	return []tui.Step{
		NewPersonalStep(styles, countries),
		NewAccountStep(styles, questions),
		NewDocumentsStep(styles),
	}
}
