package steps

import (
	"github.com/initializ/enroll/internal/form"
	"github.com/initializ/enroll/internal/tui"
	"github.com/initializ/enroll/internal/tui/components"
)

// NewAccountStep builds the account setup screen.
func NewAccountStep(styles *tui.StyleSet, questions []form.Option) *FormStep {
	p := styles.Palette()
	return newFormStep(styles, "Account Setup", "🔐", false,
		[]string{form.Username},
		components.NewTextInput(form.Username, form.Labels[form.Username], "letters, numbers, _", p),
		components.NewSecretInput(form.Password, form.Labels[form.Password], p),
		components.NewSecretInput(form.ConfirmPassword, form.Labels[form.ConfirmPassword], p),
		components.NewSingleSelect(form.SecurityQuestion, form.Labels[form.SecurityQuestion], "Select a question", questions, p),
		components.NewTextInput(form.SecurityAnswer, form.Labels[form.SecurityAnswer], "", p),
		components.NewCheckbox(form.Terms, form.Labels[form.Terms], p),
	)
}
